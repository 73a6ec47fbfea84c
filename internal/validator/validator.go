package validator

import (
	"errors"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/elhoucineqara/saascompare/internal/domain"
)

const (
	maxToolNameLength        = 100
	maxShortDescriptionChars = 200
	minPasswordLength        = 8
)

var (
	slugRegex          = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	validPricingModels = []interface{}{
		domain.PricingFree, domain.PricingFreemium, domain.PricingPaid, domain.PricingContactSales,
	}
)

// Validator provides validation methods for domain entities.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateTool validates a Tool entity.
func (v *Validator) ValidateTool(t *domain.Tool) error {
	return wrap(validation.ValidateStruct(t,
		validation.Field(&t.Name,
			validation.Required.Error("name_required"),
			validation.RuneLength(0, maxToolNameLength).Error("name_too_long"),
		),
		validation.Field(&t.Slug,
			validation.Required.Error("slug_required"),
			validation.Match(slugRegex).Error("invalid_slug_format"),
		),
		validation.Field(&t.LogoURL,
			validation.Required.Error("logo_url_required"),
			is.URL.Error("invalid_logo_url"),
		),
		validation.Field(&t.WebsiteURL,
			validation.Required.Error("website_url_required"),
			is.URL.Error("invalid_website_url"),
		),
		validation.Field(&t.AffiliateLink,
			is.URL.Error("invalid_affiliate_link"),
		),
		validation.Field(&t.ShortDescription,
			validation.Required.Error("short_description_required"),
			validation.RuneLength(0, maxShortDescriptionChars).Error("short_description_too_long"),
		),
		validation.Field(&t.CategoryID,
			validation.Required.Error("category_required"),
		),
		validation.Field(&t.PricingModel,
			validation.Required.Error("pricing_model_required"),
			validation.In(validPricingModels...).Error("invalid_pricing_model"),
		),
		validation.Field(&t.StartingPrice,
			validation.Min(0.0).Error("starting_price_negative"),
		),
		validation.Field(&t.AverageRating,
			validation.Min(0.0).Error("average_rating_out_of_range"),
			validation.Max(5.0).Error("average_rating_out_of_range"),
		),
		validation.Field(&t.ReviewCount,
			validation.Min(0).Error("review_count_negative"),
		),
	))
}

// ValidateCategory validates a Category entity.
func (v *Validator) ValidateCategory(c *domain.Category) error {
	return wrap(validation.ValidateStruct(c,
		validation.Field(&c.Name,
			validation.Required.Error("name_required"),
		),
		validation.Field(&c.Slug,
			validation.Required.Error("slug_required"),
			validation.Match(slugRegex).Error("invalid_slug_format"),
		),
	))
}

// ValidateComparison validates a Comparison entity.
func (v *Validator) ValidateComparison(c *domain.Comparison) error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.ToolIDs,
			validation.Required.Error("ids_required"),
			validation.Length(domain.ComparisonToolCount, domain.ComparisonToolCount).Error("exactly_two_tools_required"),
			validation.Each(validation.Required.Error("tool_id_required")),
		),
		validation.Field(&c.Slug,
			validation.Required.Error("slug_required"),
			validation.Match(slugRegex).Error("invalid_slug_format"),
		),
		validation.Field(&c.Title,
			validation.Required.Error("title_required"),
		),
	)
	if err != nil {
		return wrap(err)
	}

	// Custom rule: a tool cannot be compared with itself
	if c.ToolIDs[0] == c.ToolIDs[1] {
		return domain.NewValidationError("ids", "tools_must_differ")
	}

	return nil
}

// ValidateBlogPost validates a BlogPost entity.
func (v *Validator) ValidateBlogPost(p *domain.BlogPost) error {
	err := validation.ValidateStruct(p,
		validation.Field(&p.Title,
			validation.Required.Error("title_required"),
		),
		validation.Field(&p.Slug,
			validation.Required.Error("slug_required"),
			validation.Match(slugRegex).Error("invalid_slug_format"),
		),
		validation.Field(&p.Content,
			validation.Required.Error("content_required"),
		),
		validation.Field(&p.AuthorID,
			validation.Required.Error("author_required"),
		),
		validation.Field(&p.CoverImage,
			is.URL.Error("invalid_cover_image"),
		),
	)
	if err != nil {
		return wrap(err)
	}

	// Custom rule: published posts must carry their publication stamp
	if p.Published && p.PublishedAt == nil {
		return domain.NewValidationError("publishedAt", "published_requires_published_at")
	}

	return nil
}

// ValidateUser validates a User entity.
func (v *Validator) ValidateUser(u *domain.User) error {
	return wrap(validation.ValidateStruct(u,
		validation.Field(&u.Name,
			validation.Required.Error("name_required"),
		),
		validation.Field(&u.Email,
			validation.Required.Error("email_required"),
			is.EmailFormat.Error("invalid_email_format"),
		),
		validation.Field(&u.Role,
			validation.Required.Error("role_required"),
			validation.By(func(value interface{}) error {
				if role, _ := value.(string); !domain.IsValidRole(role) {
					return validation.NewError("validation_invalid_role", "invalid_role")
				}
				return nil
			}),
		),
		validation.Field(&u.PasswordHash,
			validation.Required.Error("password_required"),
		),
	))
}

// ValidatePassword validates a plaintext password before hashing.
func (v *Validator) ValidatePassword(password string) error {
	err := validation.Validate(password,
		validation.Required.Error("password_required"),
		validation.RuneLength(minPasswordLength, 0).Error("password_too_short"),
	)
	if err != nil {
		return domain.NewValidationError("password", err.Error())
	}
	return nil
}

// wrap converts ozzo validation errors into a domain.ValidationError.
func wrap(err error) error {
	if err == nil {
		return nil
	}

	var ve validation.Errors
	if errors.As(err, &ve) {
		fields := make(map[string]string, len(ve))
		for field, fieldErr := range ve {
			fields[field] = fieldErr.Error()
		}
		return &domain.ValidationError{Fields: fields, Err: err}
	}

	// Internal errors (e.g. a misconfigured rule) are not the caller's fault.
	var ie validation.InternalError
	if errors.As(err, &ie) {
		return err
	}

	return &domain.ValidationError{Err: err}
}
