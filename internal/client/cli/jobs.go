package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/recruit/internal/client/models"
)

func (a *App) jobs(ctx context.Context, args []string) error {
	var f models.JobFilter
	fs := flag.NewFlagSet("jobs", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&f.Location, "location", "", "location")
	fs.StringVar(&f.EmploymentType, "type", "", "employment type")
	if err := fs.Parse(args); err != nil {
		return a.usage("jobs")
	}
	f.Search = strings.Join(fs.Args(), " ")

	jobs, err := a.api.ListJobs(ctx, f)
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		a.println("No jobs found.")
		return nil
	}

	tw := newTable(a.out, "ID", "TITLE", "COMPANY", "LOCATION", "TYPE", "SALARY")
	for _, j := range jobs {
		row(tw, j.ID, j.Title, orDash(j.CompanyName), orDash(j.Location), orDash(j.EmploymentType), formatSalary(j.SalaryMin, j.SalaryMax))
	}
	return tw.Flush()
}

func (a *App) job(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return a.usage("job")
	}
	j, err := a.api.GetJob(ctx, args[0])
	if err != nil {
		return err
	}
	printJob(a.out, j)
	return nil
}

func (a *App) postJob(ctx context.Context, _ []string) error {
	in, err := a.inputJob(models.JobInput{Status: models.JobStatusOpen})
	if err != nil {
		return err
	}
	j, err := a.api.CreateJob(ctx, in)
	if err != nil {
		return err
	}
	a.printf("Job %s published.\n", j.ID)
	return nil
}

func (a *App) editJob(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return a.usage("edit-job")
	}
	cur, err := a.api.GetJob(ctx, args[0])
	if err != nil {
		return err
	}
	in, err := a.inputJob(models.JobInput{
		Title:          cur.Title,
		Description:    cur.Description,
		Requirements:   cur.Requirements,
		Location:       cur.Location,
		EmploymentType: cur.EmploymentType,
		SalaryMin:      cur.SalaryMin,
		SalaryMax:      cur.SalaryMax,
		Status:         cur.Status,
	})
	if err != nil {
		return err
	}
	if _, err := a.api.UpdateJob(ctx, cur.ID, in); err != nil {
		return err
	}
	a.printf("Job %s updated.\n", cur.ID)
	return nil
}

func (a *App) deleteJob(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return a.usage("delete-job")
	}
	ok, err := GetConfirm(a.reader, fmt.Sprintf("Delete job %s?", args[0]), a.out)
	if err != nil || !ok {
		return err
	}
	if err := a.api.DeleteJob(ctx, args[0]); err != nil {
		return err
	}
	a.printf("Job %s deleted.\n", args[0])
	return nil
}

// inputJob prompts for every job field, offering cur's values as defaults.
func (a *App) inputJob(cur models.JobInput) (models.JobInput, error) {
	in := cur
	var err error

	if in.Title, err = GetWithDefault(a.reader, "Title", cur.Title, a.out); err != nil {
		return in, err
	}
	if in.Title == "" {
		return in, errors.New("title is required")
	}
	if in.Description, err = GetWithDefault(a.reader, "Description", cur.Description, a.out); err != nil {
		return in, err
	}
	reqs, err := GetWithDefault(a.reader, "Requirements (comma separated)", strings.Join(cur.Requirements, ", "), a.out)
	if err != nil {
		return in, err
	}
	in.Requirements = splitList(reqs)
	if in.Location, err = GetWithDefault(a.reader, "Location", cur.Location, a.out); err != nil {
		return in, err
	}
	if in.EmploymentType, err = GetWithDefault(a.reader, "Employment type (full-time, part-time, contract...)", cur.EmploymentType, a.out); err != nil {
		return in, err
	}
	if in.SalaryMin, err = a.inputInt("Minimum salary", cur.SalaryMin); err != nil {
		return in, err
	}
	if in.SalaryMax, err = a.inputInt("Maximum salary", cur.SalaryMax); err != nil {
		return in, err
	}
	if in.SalaryMin > 0 && in.SalaryMax > 0 && in.SalaryMin > in.SalaryMax {
		return in, fmt.Errorf("minimum salary %d is above maximum %d", in.SalaryMin, in.SalaryMax)
	}
	status, err := GetWithDefault(a.reader, "Status (open/draft/closed)", string(cur.Status), a.out)
	if err != nil {
		return in, err
	}
	switch s := models.JobStatus(status); s {
	case models.JobStatusOpen, models.JobStatusDraft, models.JobStatusClosed, "":
		in.Status = s
	default:
		return in, fmt.Errorf("unknown job status %q", status)
	}
	return in, nil
}

func (a *App) inputInt(label string, cur int) (int, error) {
	def := ""
	if cur > 0 {
		def = strconv.Itoa(cur)
	}
	v, err := GetWithDefault(a.reader, label, def, a.out)
	if err != nil || v == "" {
		return 0, err
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s: %q is not a positive number", strings.ToLower(label), v)
	}
	return n, nil
}
