package settings

import "time"

// settingsID is the primary key of the single settings row.
const settingsID = "global"

type SettingsData struct {
	ID               string    `gorm:"primaryKey;size:36" json:"id"`
	SysEmail         string    `gorm:"column:sys_email" json:"sysEmail"`
	PrivacyPolicyURL string    `gorm:"column:privacy_policy_url" json:"privacyPolicyUrl"`
	TermsOfUseURL    string    `gorm:"column:terms_of_use_url" json:"termsOfUseUrl"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func (SettingsData) TableName() string { return "settings" }

type Settings struct {
	ID               string `json:"id"`
	SysEmail         string `json:"sysEmail"`
	PrivacyPolicyURL string `json:"privacyPolicyUrl"`
	TermsOfUseURL    string `json:"termsOfUseUrl"`
}

type UpdateSettingsInput struct {
	SysEmail         *string `mapstructure:"sysEmail" validate:"omitempty,email"`
	PrivacyPolicyURL *string `mapstructure:"privacyPolicyUrl" validate:"omitempty,url"`
	TermsOfUseURL    *string `mapstructure:"termsOfUseUrl" validate:"omitempty,url"`
}

func ToSettings(s *SettingsData) *Settings {
	if s == nil {
		return nil
	}
	return &Settings{
		ID:               s.ID,
		SysEmail:         s.SysEmail,
		PrivacyPolicyURL: s.PrivacyPolicyURL,
		TermsOfUseURL:    s.TermsOfUseURL,
	}
}
