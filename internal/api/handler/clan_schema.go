package handler

import (
	"time"

	"github.com/ancientrealms/kingdom-system/internal/core/ports"
)

// updateClanRequest carries the partial clan update. An empty name is a
// no-op on the stored name; a present description always applies, even when
// it is the empty string. The description pointer keeps "absent" and
// "explicitly empty" distinguishable.
type updateClanRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type newMemberRequest struct {
	Nickname string `json:"nickname" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Rank     string `json:"rank" validate:"required"`
}

// updateMemberRequest is a full replace: every mutable member field is
// written unconditionally, so all of them travel in the body.
type updateMemberRequest struct {
	Nickname         string    `json:"nickname" validate:"required"`
	Email            string    `json:"email"`
	Password         string    `json:"password"`
	Rank             string    `json:"rank"`
	Status           string    `json:"status"`
	RegistrationDate time.Time `json:"registration_date" validate:"required"`
	LastLogin        time.Time `json:"last_login" validate:"required"`
	Description      string    `json:"description"`
	Phone            string    `json:"phone"`
	ImageAccess      bool      `json:"image_access"`
	InfoAccess       bool      `json:"info_access"`
	ManageAccess     bool      `json:"manage_access"`
	MediaAccess      bool      `json:"media_access"`
}

func (r updateMemberRequest) toInput() ports.UpdateMemberInput {
	return ports.UpdateMemberInput{
		Nickname:         r.Nickname,
		Email:            r.Email,
		Password:         r.Password,
		Rank:             r.Rank,
		Status:           r.Status,
		RegistrationDate: r.RegistrationDate,
		LastLogin:        r.LastLogin,
		Description:      r.Description,
		Phone:            r.Phone,
		ImageAccess:      r.ImageAccess,
		InfoAccess:       r.InfoAccess,
		ManageAccess:     r.ManageAccess,
		MediaAccess:      r.MediaAccess,
	}
}
