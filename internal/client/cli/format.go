package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/recruit/internal/client/models"
)

func newTable(w io.Writer, header ...string) *tabwriter.Writer {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	return tw
}

func row(tw *tabwriter.Writer, cols ...string) {
	fmt.Fprintln(tw, strings.Join(cols, "\t"))
}

func formatSalary(lo, hi int) string {
	switch {
	case lo > 0 && hi > 0:
		return fmt.Sprintf("%d-%d", lo, hi)
	case lo > 0:
		return fmt.Sprintf("from %d", lo)
	case hi > 0:
		return fmt.Sprintf("up to %d", hi)
	default:
		return "-"
	}
}

func formatScore(s *float64) string {
	if s == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *s)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(time.DateOnly)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func printJob(w io.Writer, j models.Job) {
	fmt.Fprintf(w, "%s  [%s]\n", j.Title, orDash(string(j.Status)))
	fmt.Fprintf(w, "ID:       %s\n", j.ID)
	fmt.Fprintf(w, "Company:  %s\n", orDash(j.CompanyName))
	fmt.Fprintf(w, "Location: %s\n", orDash(j.Location))
	fmt.Fprintf(w, "Type:     %s\n", orDash(j.EmploymentType))
	fmt.Fprintf(w, "Salary:   %s\n", formatSalary(j.SalaryMin, j.SalaryMax))
	fmt.Fprintf(w, "Posted:   %s\n", formatDate(j.CreatedAt))
	if j.Description != "" {
		fmt.Fprintf(w, "\n%s\n", j.Description)
	}
	if len(j.Requirements) > 0 {
		fmt.Fprintln(w, "\nRequirements:")
		for _, r := range j.Requirements {
			fmt.Fprintf(w, "  - %s\n", r)
		}
	}
}

func printProfile(w io.Writer, p models.CandidateProfile) {
	fmt.Fprintf(w, "Name:      %s\n", orDash(strings.TrimSpace(p.FirstName+" "+p.LastName)))
	fmt.Fprintf(w, "Phone:     %s\n", orDash(p.Phone))
	fmt.Fprintf(w, "Location:  %s\n", orDash(p.Location))
	fmt.Fprintf(w, "Position:  %s\n", orDash(p.CurrentPosition))
	fmt.Fprintf(w, "Education: %s\n", orDash(p.Education))
	fmt.Fprintf(w, "Skills:    %s\n", orDash(strings.Join(p.Skills, ", ")))
	fmt.Fprintf(w, "Resume:    %s\n", orDash(p.ResumeURL))
	if p.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", p.Summary)
	}
}
