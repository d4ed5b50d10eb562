package request

import "video-catalog/pkg/utils"

// CategoryRules is applied on both store and update.
var CategoryRules = []utils.Rule{
	{Field: "name", Kind: utils.KindString, Required: true, Tags: "max=255"},
	{Field: "description", Kind: utils.KindString, Nullable: true},
	{Field: "is_active", Kind: utils.KindBoolean},
}

// CategoryRequest is the validated form of a category payload. Nil pointers
// mean the field was not sent; HasDescription distinguishes an absent
// description from one cleared to null.
type CategoryRequest struct {
	Name           string
	Description    *string
	HasDescription bool
	IsActive       *bool
}

// NewCategoryRequest builds a request from the output of utils.Validator.
func NewCategoryRequest(fields map[string]any) *CategoryRequest {
	req := &CategoryRequest{IsActive: optionalBool(fields, "is_active")}
	req.Name, _ = fields["name"].(string)
	req.Description, req.HasDescription = optionalString(fields, "description")
	return req
}
