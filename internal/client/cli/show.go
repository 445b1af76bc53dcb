package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/driverdesk/internal/drivers"
)

// Show prints one driver with its licences.
func (a *App) Show(ctx context.Context, driverID string) error {
	d, err := a.registry.Get(ctx, driverID)
	if err != nil {
		a.report(ctx, err)
		return err
	}
	writeDriver(a.out, d)
	return nil
}

// List prints all drivers in registration order.
func (a *App) List(ctx context.Context) error {
	list, err := a.registry.List(ctx)
	if err != nil {
		a.report(ctx, err)
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No drivers registered.")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPASSPORT\tLICENCES")
	for _, d := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", d.ID, d.FullName(), d.Passport, len(d.Licenses))
	}
	return tw.Flush()
}

func writeDriver(w io.Writer, d drivers.Driver) {
	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)
	row := func(label, value string) {
		if value != "" {
			fmt.Fprintf(tw, "%s:\t%s\n", label, value)
		}
	}

	row("ID", d.ID)
	row("Registered", d.CreatedAt.Format(time.DateTime))
	row("Name", d.FullName())
	row("Passport", d.Passport)
	row("Registration", joinNonEmpty(d.RegistrationAddress, d.RegistrationCity))
	row("Living", joinNonEmpty(d.LivingAddress, d.LivingCity))
	row("Workplace", joinNonEmpty(d.Workplace, d.Position))
	row("Phone", d.Phone)
	row("Email", d.Email)
	row("Photo", d.Photo)
	row("Notes", d.Notes)
	tw.Flush()

	if len(d.Licenses) == 0 {
		fmt.Fprintln(w, "No licences.")
		return
	}
	fmt.Fprintln(w, "Licences:")
	for i, l := range d.Licenses {
		fmt.Fprintf(w, "  %d. %s, %s to %s, %s, categories %s\n",
			i+1, l.Number, l.IssueDate, l.ExpiryDate, l.Authority, l.Categories)
	}
}

func joinNonEmpty(parts ...string) string {
	var out []string
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, ", ")
}
