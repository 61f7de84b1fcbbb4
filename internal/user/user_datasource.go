package user

import (
	"context"

	"github.com/graph-gophers/dataloader/v7"
	"github.com/teamreg/backend/internal/apperr"
	"github.com/teamreg/backend/internal/auth"
	"github.com/teamreg/backend/pkg/utils"
	"github.com/teamreg/backend/pkg/validator"
	"go.uber.org/zap"
)

// DataSource wraps the user repository with guard checks, mapping and a
// per-request load cache. One DataSource is built per incoming request, so
// the loader cache never outlives nor crosses requests.
type DataSource struct {
	repo   Repository
	user   *auth.CurrentUser
	log    *zap.Logger
	loader *dataloader.Loader[string, *User]
}

func NewDataSource(repo Repository, cu *auth.CurrentUser, log *zap.Logger) *DataSource {
	ds := &DataSource{repo: repo, user: cu, log: log.Named("ds.user")}
	ds.loader = dataloader.NewBatchedLoader(ds.batchUsers)
	return ds
}

func (ds *DataSource) batchUsers(ctx context.Context, ids []string) []*dataloader.Result[*User] {
	results := make([]*dataloader.Result[*User], len(ids))
	rows, err := ds.repo.FindByIDs(ids)
	if err != nil {
		for i := range results {
			results[i] = &dataloader.Result[*User]{Error: err}
		}
		return results
	}
	byID := make(map[string]*UserData, len(rows))
	for i := range rows {
		byID[rows[i].ID] = &rows[i]
	}
	// missing ids yield nil data, not an error; callers decide whether a
	// dangling reference is fatal
	for i, id := range ids {
		results[i] = &dataloader.Result[*User]{Data: ToUser(byID[id])}
	}
	return results
}

// GetUser returns the user by id or a NotFound error.
func (ds *DataSource) GetUser(ctx context.Context, id string) (*User, error) {
	u, err := ds.loader.Load(ctx, id)()
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.NotFound("user", id)
	}
	return u, nil
}

// GetUsersByIDs resolves a list of user ids, silently dropping dangling
// references.
func (ds *DataSource) GetUsersByIDs(ctx context.Context, ids []string) ([]*User, error) {
	users := make([]*User, 0, len(ids))
	for _, id := range ids {
		u, err := ds.loader.Load(ctx, id)()
		if err != nil {
			return nil, err
		}
		if u != nil {
			users = append(users, u)
		}
	}
	return users, nil
}

func (ds *DataSource) GetUsers(ctx context.Context, filter Filter) ([]*User, error) {
	rows, err := ds.repo.Find(filter)
	if err != nil {
		return nil, err
	}
	users := make([]*User, len(rows))
	for i := range rows {
		users[i] = ToUser(&rows[i])
	}
	return users, nil
}

func (ds *DataSource) CreateUser(ctx context.Context, input CreateUserInput) (*User, error) {
	if err := auth.Authorize(ds.user, auth.Admin()); err != nil {
		return nil, err
	}
	if err := validator.Struct(input); err != nil {
		return nil, apperr.Validation(err.Error())
	}
	if existing, err := ds.repo.FindByUsername(input.Username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, apperr.Validation("username already taken")
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}
	u := &UserData{
		Username:  input.Username,
		Password:  hash,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Phone:     input.Phone,
	}
	if err := ds.repo.Create(u); err != nil {
		return nil, err
	}
	ds.log.Info("user created", zap.String("id", u.ID))
	return ToUser(u), nil
}

func (ds *DataSource) UpdateUser(ctx context.Context, id string, input UpdateUserInput) (*User, error) {
	if err := auth.Authorize(ds.user, auth.Admin(), auth.Self(id)); err != nil {
		return nil, err
	}
	if err := validator.Struct(input); err != nil {
		return nil, apperr.Validation(err.Error())
	}

	u, err := ds.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.NotFound("user", id)
	}
	if input.Username != nil && *input.Username != u.Username {
		if existing, err := ds.repo.FindByUsername(*input.Username); err != nil {
			return nil, err
		} else if existing != nil {
			return nil, apperr.Validation("username already taken")
		}
		u.Username = *input.Username
	}
	if input.FirstName != nil {
		u.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		u.LastName = *input.LastName
	}
	if input.Phone != nil {
		u.Phone = *input.Phone
	}
	if err := ds.repo.Save(u); err != nil {
		return nil, err
	}
	return ToUser(u), nil
}

func (ds *DataSource) DeleteUser(ctx context.Context, id string) (*User, error) {
	if err := auth.Authorize(ds.user, auth.Admin()); err != nil {
		return nil, err
	}
	if ds.user.ID == id {
		return nil, apperr.Validation("cannot delete own account")
	}
	existing, err := ds.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperr.NotFound("user", id)
	}
	u, err := ds.repo.SoftDelete(id, ds.user.ID)
	if err != nil {
		return nil, err
	}
	return ToUser(u), nil
}

// ChangePassword sets a new password for the account. Allowed for the
// account owner and for admins.
func (ds *DataSource) ChangePassword(ctx context.Context, id string, password string) (*User, error) {
	if err := auth.Authorize(ds.user, auth.Admin(), auth.Self(id)); err != nil {
		return nil, err
	}
	if len(password) < 8 {
		return nil, apperr.Validation("password must have at least 8 characters")
	}
	u, err := ds.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.NotFound("user", id)
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	if err := ds.repo.SetPassword(id, hash); err != nil {
		return nil, err
	}
	return ToUser(u), nil
}

// SetAdmin grants or revokes the admin flag. Admins cannot strip their own
// flag, which keeps at least one admin reachable.
func (ds *DataSource) SetAdmin(ctx context.Context, id string, isAdmin bool) (*User, error) {
	if err := auth.Authorize(ds.user, auth.Admin()); err != nil {
		return nil, err
	}
	if ds.user.ID == id && !isAdmin {
		return nil, apperr.Validation("cannot revoke own admin flag")
	}
	existing, err := ds.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperr.NotFound("user", id)
	}
	u, err := ds.repo.SetAdmin(id, isAdmin)
	if err != nil {
		return nil, err
	}
	ds.log.Info("admin flag changed", zap.String("id", id), zap.Bool("isAdmin", isAdmin))
	return ToUser(u), nil
}
