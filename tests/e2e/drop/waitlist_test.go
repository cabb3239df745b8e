//go:build e2e

package drop_test

import (
	"net/http"
	"sync"

	"limited-drop-api/internal/handler/dto/request"
	"limited-drop-api/internal/handler/dto/response"
	"limited-drop-api/tests/common/dbtest"
	httphelper "limited-drop-api/tests/common/httptest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *DropSuite) waitlistProduct() dbtest.SeededProduct {
	return dbtest.CreateTestProduct(s.T(), s.DB, dbtest.ProductFixture{
		BasePrice: defaultBasePrice,
		Phase:     "waitlist",
		Variants:  []dbtest.VariantFixture{{Color: "Onyx", Material: "Leather", Stock: 10}},
	})
}

func (s *DropSuite) TestWaitlist() {
	s.Run("同時参加でも順位は1から連番", func() {
		t := s.T()
		const joiners = 8
		p := s.waitlistProduct()

		tokens := make([]string, joiners)
		for i := range tokens {
			_, tokens[i] = s.customer(uuid.NewString()[:8] + "@example.com")
		}

		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			positions []int
		)
		for _, token := range tokens {
			wg.Add(1)
			go func(token string) {
				defer wg.Done()
				w := httphelper.PerformRequest(t, s.Router, http.MethodPost, waitlistURL,
					request.JoinWaitlistRequest{ProductID: p.ID}, token)
				if w.Code != http.StatusCreated {
					t.Errorf("join failed: %d %s", w.Code, w.Body.String())
					return
				}
				var res response.WaitlistJoinResponse
				httphelper.DecodeBody(t, w, &res)
				mu.Lock()
				positions = append(positions, res.Position)
				mu.Unlock()
			}(token)
		}
		wg.Wait()

		want := make([]int, joiners)
		for i := range want {
			want[i] = i + 1
		}
		assert.ElementsMatch(t, want, positions)
	})

	s.Run("二重参加は拒否され順位は消費しない", func() {
		t := s.T()
		p := s.waitlistProduct()
		_, first := s.customer("first-in-line@example.com")
		_, second := s.customer("second-in-line@example.com")

		join := request.JoinWaitlistRequest{ProductID: p.ID}
		w := httphelper.PerformRequest(t, s.Router, http.MethodPost, waitlistURL, join, first)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httphelper.PerformRequest(t, s.Router, http.MethodPost, waitlistURL, join, first)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

		w = httphelper.PerformRequest(t, s.Router, http.MethodPost, waitlistURL, join, second)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var res response.WaitlistJoinResponse
		httphelper.DecodeBody(t, w, &res)
		assert.Equal(t, 2, res.Position)
	})

	s.Run("ゲストは連絡先で参加できる", func() {
		t := s.T()
		p := s.waitlistProduct()

		w := httphelper.PerformRequest(t, s.Router, http.MethodPost, waitlistURL,
			request.JoinWaitlistRequest{ProductID: p.ID, Email: "guest@example.com", Phone: "+2348012345678"}, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var res response.WaitlistJoinResponse
		httphelper.DecodeBody(t, w, &res)
		assert.Equal(t, 1, res.Position)
	})

	s.Run("ウェイトリスト期間中は購入できない", func() {
		t := s.T()
		p := s.waitlistProduct()
		_, token := s.customer("eager@example.com")

		w := s.checkout(token, p.ID, 1)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	})
}
