package settings

import (
	"context"

	"github.com/teamreg/backend/internal/apperr"
	"github.com/teamreg/backend/internal/auth"
	"github.com/teamreg/backend/pkg/validator"
	"go.uber.org/zap"
)

type DataSource struct {
	repo Repository
	user *auth.CurrentUser
	log  *zap.Logger
}

func NewDataSource(repo Repository, cu *auth.CurrentUser, log *zap.Logger) *DataSource {
	return &DataSource{repo: repo, user: cu, log: log.Named("ds.settings")}
}

// GetSettings is readable by anyone, signed in or not; the client needs
// the policy links before login.
func (ds *DataSource) GetSettings(ctx context.Context) (*Settings, error) {
	s, err := ds.repo.Get()
	if err != nil {
		return nil, err
	}
	return ToSettings(s), nil
}

func (ds *DataSource) UpdateSettings(ctx context.Context, input UpdateSettingsInput) (*Settings, error) {
	if err := auth.Authorize(ds.user, auth.Admin()); err != nil {
		return nil, err
	}
	if err := validator.Struct(input); err != nil {
		return nil, apperr.Validation(err.Error())
	}
	s, err := ds.repo.Get()
	if err != nil {
		return nil, err
	}
	if input.SysEmail != nil {
		s.SysEmail = *input.SysEmail
	}
	if input.PrivacyPolicyURL != nil {
		s.PrivacyPolicyURL = *input.PrivacyPolicyURL
	}
	if input.TermsOfUseURL != nil {
		s.TermsOfUseURL = *input.TermsOfUseURL
	}
	if err := ds.repo.Save(s); err != nil {
		return nil, err
	}
	ds.log.Info("settings updated")
	return ToSettings(s), nil
}
