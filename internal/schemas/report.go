package schemas

import (
	"time"

	"github.com/google/uuid"

	"webeye/internal/models"
)

type ReportCreate struct {
	UUID         string        `json:"uuid" validate:"omitempty,uuid"`
	ResourceUUID string        `json:"resource_uuid" validate:"required,uuid"`
	Status       models.Status `json:"status" validate:"required,status"`
	Text         *string       `json:"text" validate:"omitempty,max=4096"`
	IsModerated  bool          `json:"is_moderated"`
}

// ApplyDefaults fills a new random uuid when the caller sent none or null.
func (r *ReportCreate) ApplyDefaults() {
	if r.UUID == "" {
		r.UUID = uuid.NewString()
	}
}

// ReportUpdate is a partial update: a nil field leaves the stored value
// unchanged, it never clears it.
type ReportUpdate struct {
	Status      *models.Status `json:"status" validate:"omitempty,status"`
	Text        *string        `json:"text" validate:"omitempty,max=4096"`
	IsModerated *bool          `json:"is_moderated"`
}

// Changes returns the columns to update. It is empty when every field is nil.
func (r ReportUpdate) Changes() map[string]interface{} {
	changes := make(map[string]interface{})
	if r.Status != nil {
		changes["status"] = *r.Status
	}
	if r.Text != nil {
		changes["text"] = *r.Text
	}
	if r.IsModerated != nil {
		changes["is_moderated"] = *r.IsModerated
	}
	return changes
}

type ReportOut struct {
	UUID        string        `json:"uuid"`
	Status      models.Status `json:"status"`
	Text        *string       `json:"text"`
	IsModerated bool          `json:"is_moderated"`
	CreatedAt   time.Time     `json:"created_at"`
}

type ReportOutWithResourceName struct {
	ReportOut
	ResourceUUID string `json:"resource_uuid"`
	ResourceName string `json:"resource_name"`
}

// ReportFilter narrows the admin report listing. IsModerated is parsed by
// the handler since it is tri-state.
type ReportFilter struct {
	Page
	IsModerated *bool `json:"is_moderated"`
}

func NewReportOut(r *models.Report) ReportOut {
	return ReportOut{
		UUID:        r.UUID,
		Status:      r.Status,
		Text:        r.Text,
		IsModerated: r.IsModerated,
		CreatedAt:   r.CreatedAt,
	}
}

func NewReportOutList(reports []models.Report) []ReportOut {
	out := make([]ReportOut, 0, len(reports))
	for i := range reports {
		out = append(out, NewReportOut(&reports[i]))
	}
	return out
}

// NewReportOutWithResourceName expects r.Resource to be preloaded; a missing
// resource yields an empty name.
func NewReportOutWithResourceName(r *models.Report) ReportOutWithResourceName {
	out := ReportOutWithResourceName{
		ReportOut:    NewReportOut(r),
		ResourceUUID: r.ResourceUUID,
	}
	if r.Resource != nil {
		out.ResourceName = r.Resource.Name
	}
	return out
}

func NewReportOutWithResourceNameList(reports []models.Report) []ReportOutWithResourceName {
	out := make([]ReportOutWithResourceName, 0, len(reports))
	for i := range reports {
		out = append(out, NewReportOutWithResourceName(&reports[i]))
	}
	return out
}
