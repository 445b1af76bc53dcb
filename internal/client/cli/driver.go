package cli

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/driverdesk/internal/drivers"
	"github.com/dmitrijs2005/driverdesk/internal/filex"
	"github.com/dmitrijs2005/driverdesk/internal/photo"
	"github.com/dmitrijs2005/driverdesk/internal/validation"
)

func driverPrompts(requireCities bool) []fieldPrompt[drivers.Fields] {
	city := " (optional)"
	if requireCities {
		city = ""
	}
	return []fieldPrompt[drivers.Fields]{
		{"last_name", "Last name", func(f *drivers.Fields) *string { return &f.LastName }},
		{"first_name", "First name", func(f *drivers.Fields) *string { return &f.FirstName }},
		{"middle_name", "Middle name", func(f *drivers.Fields) *string { return &f.MiddleName }},
		{"passport", "Passport (XXXX XXXXXX)", func(f *drivers.Fields) *string { return &f.Passport }},
		{"registration_address", "Registration address", func(f *drivers.Fields) *string { return &f.RegistrationAddress }},
		{"registration_city", "Registration city" + city, func(f *drivers.Fields) *string { return &f.RegistrationCity }},
		{"living_address", "Living address", func(f *drivers.Fields) *string { return &f.LivingAddress }},
		{"living_city", "Living city" + city, func(f *drivers.Fields) *string { return &f.LivingCity }},
		{"workplace", "Workplace (optional)", func(f *drivers.Fields) *string { return &f.Workplace }},
		{"position", "Position (optional)", func(f *drivers.Fields) *string { return &f.Position }},
		{"phone", "Phone (+7XXXXXXXXXX)", func(f *drivers.Fields) *string { return &f.Phone }},
		{"email", "Email", func(f *drivers.Fields) *string { return &f.Email }},
		{"notes", "Notes (optional)", func(f *drivers.Fields) *string { return &f.Notes }},
	}
}

// NewDriver registers a driver interactively.
//
// The pre-generated id is shown first, then every field and the photo are
// prompted. On submit all validation messages are shown together and the user
// may correct just the failed fields and submit again. Nothing is stored until
// the whole record is valid.
func (a *App) NewDriver(ctx context.Context) error {
	id := a.registry.NewDriverID()
	fmt.Fprintf(a.out, "New driver, id %s\n", id)

	var f drivers.Fields
	sel := photo.NewSelection(a.inspect, a.config.MaxPhotoSize)
	prompts := driverPrompts(a.config.RequireCities)

	var only []string
	for {
		if err := promptFields(ctx, a.in, a.out, &f, prompts, only); err != nil {
			a.report(ctx, err)
			return err
		}
		if only == nil || slices.Contains(only, "photo") {
			if err := a.choosePhoto(ctx, sel); err != nil {
				a.report(ctx, err)
				return err
			}
		}
		f.Photo = sel.Path()

		err := a.registry.CreateDriver(ctx, id, f)
		if err == nil {
			fmt.Fprintf(a.out, "Driver %s saved.\n", id)
			return nil
		}

		fmt.Fprintln(a.out, "The driver was not saved:")
		a.report(ctx, err)

		var verrs validation.Errors
		if !errors.As(err, &verrs) {
			return err
		}
		again, cerr := a.confirm(ctx, "Correct the fields above?")
		if cerr != nil {
			return cerr
		}
		if !again {
			return err
		}
		only = verrs.Fields()
	}
}

// choosePhoto asks for a photo path until one passes the photo checks or the
// answer is empty. A rejected file leaves the previous selection in place.
// Answers of the form "photo <path>" are accepted too.
func (a *App) choosePhoto(ctx context.Context, sel *photo.Selection) error {
	prompt := "Photo path (3:4 portrait, up to 2 MB, empty to skip)"
	for {
		if cur := sel.Path(); cur != "" {
			prompt = fmt.Sprintf("Photo path (empty keeps %s)", cur)
		}
		answer, err := getSimpleText(ctx, a.in, prompt, a.out)
		if err != nil {
			return err
		}
		path, err := filex.ResolvePath(strings.TrimSpace(strings.TrimPrefix(answer, "photo ")))
		if err != nil {
			fmt.Fprintln(a.out, "Cannot read image:", err)
			continue
		}
		if path == "" {
			return nil
		}

		info, err := sel.Accept(path)
		switch {
		case err == nil:
			fmt.Fprintf(a.out, "Photo accepted (%dx%d).\n", info.Width, info.Height)
			return nil
		case photo.IsConstraint(err):
			fmt.Fprintln(a.out, err.Error())
		default:
			a.logger.Warn(ctx, "photo rejected", "path", path, "error", err)
			fmt.Fprintln(a.out, "Cannot read image:", err)
		}
	}
}
