package converter

import (
	"limited-drop-api/internal/domain/user"
	sqlc "limited-drop-api/internal/infra/sqlc/generated"
	"limited-drop-api/internal/pkg/errs"
	"limited-drop-api/internal/pkg/pgconv"
)

func UserToDomain(row sqlc.Users) (*user.User, error) {
	email, err := user.NewEmail(row.Email)
	if err != nil {
		return nil, errs.Wrap(err, "stored user email is invalid")
	}

	role, err := user.NewRole(row.Role)
	if err != nil {
		return nil, errs.Wrap(err, "stored user role is invalid")
	}

	var tag *user.OwnerTag
	if row.OwnerTag.Valid {
		t, terr := user.ParseOwnerTag(row.OwnerTag.String)
		if terr != nil {
			return nil, errs.Wrap(terr, "stored owner tag is invalid")
		}
		tag = &t
	}

	return user.ReconstructUser(
		row.ID,
		email,
		row.FirstName,
		row.LastName,
		pgconv.StringPtrFromPgtype(row.Phone),
		role,
		row.PriorityClub,
		tag,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
