package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/driverdesk/internal/drivers"
	"github.com/dmitrijs2005/driverdesk/internal/validation"
)

var licensePrompts = []fieldPrompt[drivers.License]{
	{"number", "Licence number", func(l *drivers.License) *string { return &l.Number }},
	{"issue_date", "Issue date", func(l *drivers.License) *string { return &l.IssueDate }},
	{"expiry_date", "Expiry date", func(l *drivers.License) *string { return &l.ExpiryDate }},
	{"authority", "Issuing authority", func(l *drivers.License) *string { return &l.Authority }},
	{"categories", "Vehicle categories", func(l *drivers.License) *string { return &l.Categories }},
	{"photo", "Licence photo path (optional)", func(l *drivers.License) *string { return &l.Photo }},
}

// AddLicense appends a licence to an existing driver. The driver is looked
// up before any licence field is asked, so an unknown id fails fast.
func (a *App) AddLicense(ctx context.Context, driverID string) error {
	if driverID == "" {
		id, err := getSimpleText(ctx, a.in, "Enter driver id", a.out)
		if err != nil {
			return err
		}
		driverID = id
	}

	d, err := a.registry.Get(ctx, driverID)
	if err != nil {
		a.report(ctx, err)
		return err
	}
	fmt.Fprintf(a.out, "New licence for %s\n", d.FullName())

	var lic drivers.License
	var only []string
	for {
		if err := promptFields(ctx, a.in, a.out, &lic, licensePrompts, only); err != nil {
			a.report(ctx, err)
			return err
		}

		err := a.registry.AddLicense(ctx, driverID, lic)
		if err == nil {
			fmt.Fprintln(a.out, "Licence added.")
			return nil
		}

		fmt.Fprintln(a.out, "The licence was not added:")
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
