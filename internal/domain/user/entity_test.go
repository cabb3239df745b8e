//go:build unit

package user_test

import (
	"testing"

	"limited-drop-api/internal/domain/user"
	"limited-drop-api/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {

		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		email, _ := user.NewEmail("test@example.com")
		phone := "+2348012345678"
		expected := user.NewUser(email, "Adaeze", "Bakare", &phone, user.RoleCustomer)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Adaeze Bakare", actual.FullName())
		assert.False(t, actual.PriorityClub())
		assert.Nil(t, actual.OwnerTag())
	})

	t.Run("メールアドレス検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "有効なメールアドレスOK",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "空のメールアドレスNG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "無効な形式NG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid-email") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("ロール検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "admin ロールOK",
				mutate: func(b *builder.UserBuilder) { b.WithRole("admin") },
			},
			{
				name:   "customer ロールOK",
				mutate: func(b *builder.UserBuilder) { b.WithRole("customer") },
			},
			{
				name:   "旧ロールNG",
				mutate: func(b *builder.UserBuilder) { b.WithRole("viewer") },
				errIs:  user.ErrInvalidRole,
			},
			{
				name:   "空のロールNG",
				mutate: func(b *builder.UserBuilder) { b.WithRole("") },
				errIs:  user.ErrInvalidRole,
			},
		})
	})

	t.Run("オーナータグ検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "3文字OK",
				mutate: func(b *builder.UserBuilder) { b.WithOwnerTag("ADB-23-78") },
			},
			{
				name:   "2文字OK",
				mutate: func(b *builder.UserBuilder) { b.WithOwnerTag("AB-23-78") },
			},
			{
				name:   "数字桁不足NG",
				mutate: func(b *builder.UserBuilder) { b.WithOwnerTag("ADB-2-78") },
				errIs:  user.ErrInvalidOwnerTag,
			},
		})
	})
}

func TestGenerateOwnerTag(t *testing.T) {
	fixed := func() int { return 4207 }

	cases := []struct {
		name  string
		first string
		last  string
		phone string
		want  string
		errIs error
	}{
		{name: "電話番号の先頭と末尾2桁", first: "Adaeze", last: "Bakare", phone: "+234 801 234 5678", want: "ADB-23-78"},
		{name: "ミドルネームの頭文字", first: "Ada Kemi", last: "Bakare", phone: "08012345678", want: "AKB-08-78"},
		{name: "電話番号なしはランダム", first: "Ada", last: "Bakare", want: "ADB-42-07"},
		{name: "短い電話番号はランダム", first: "Ada", last: "Bakare", phone: "123", want: "ADB-42-07"},
		{name: "1文字の名前は2文字タグ", first: "A", last: "Bakare", phone: "+2348012345678", want: "AB-23-78"},
		{name: "名前なしNG", first: "", last: "Bakare", errIs: user.ErrInvalidOwnerTag},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tag, err := user.GenerateOwnerTag(c.first, c.last, c.phone, fixed)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, tag.String())
			assert.True(t, user.ValidateOwnerTag(tag.String()))
		})
	}
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {

			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
