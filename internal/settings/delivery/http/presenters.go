package http

import (
	"aegis-srv/internal/model"
	"aegis-srv/internal/settings"
)

type updateSettingsReq struct {
	DefaultMode     *string  `json:"default_mode"`
	AutoReport      *bool    `json:"auto_report"`
	TrustedAccounts []string `json:"trusted_accounts"`
	MaxResults      *int     `json:"max_results"`
}

func (r updateSettingsReq) toInput() settings.UpdateInput {
	in := settings.UpdateInput{
		AutoReport:      r.AutoReport,
		TrustedAccounts: r.TrustedAccounts,
		MaxResults:      r.MaxResults,
	}
	if r.DefaultMode != nil {
		mode := model.ScanMode(*r.DefaultMode)
		in.DefaultMode = &mode
	}
	return in
}

type settingsResp struct {
	DefaultMode     string   `json:"default_mode"`
	AutoReport      bool     `json:"auto_report"`
	TrustedAccounts []string `json:"trusted_accounts"`
	MaxResults      int      `json:"max_results"`
}

func (h *handler) newSettingsResp(s settings.Settings) settingsResp {
	trusted := s.TrustedAccounts
	if trusted == nil {
		trusted = []string{}
	}
	return settingsResp{
		DefaultMode:     string(s.DefaultMode),
		AutoReport:      s.AutoReport,
		TrustedAccounts: trusted,
		MaxResults:      s.MaxResults,
	}
}
