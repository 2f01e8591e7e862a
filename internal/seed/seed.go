package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	appModels "github.com/yigit/unirecords/internal/app/models"
	"github.com/yigit/unirecords/internal/app/models/dto"
	appServices "github.com/yigit/unirecords/internal/app/services"
	"github.com/yigit/unirecords/internal/pkg/auth"
)

// DemoStudentID identifies the demo student; its presence marks the demo data as loaded.
const DemoStudentID = "S1001"

// AdminCreator inserts an admin unless the username is taken
type AdminCreator interface {
	CreateIfMissing(ctx context.Context, admin *appModels.Admin) (bool, error)
}

// StudentLookup reports whether a student id is taken
type StudentLookup interface {
	ExistsByStudentID(ctx context.Context, studentID string) (bool, error)
}

// Stores are the repositories seeding reads and writes directly
type Stores struct {
	Admins   AdminCreator
	Students StudentLookup
}

// Options controls what CreateDefaultData writes
type Options struct {
	AdminUsername string
	AdminPassword string
	// Demo also loads a program, its units and a student to log in with
	Demo bool
}

type demoUnit struct {
	code          string
	title         string
	year          int
	semester      string
	fee           float64
	prerequisites []string
}

var demoUnits = []demoUnit{
	{code: "CS101", title: "Programming 1", year: 1, semester: "S1", fee: 1200},
	{code: "CS102", title: "Discrete Mathematics", year: 1, semester: "S1", fee: 1200},
	{code: "CS103", title: "Computer Systems", year: 1, semester: "S1", fee: 1200},
	{code: "CS104", title: "Programming 2", year: 1, semester: "S2", fee: 1200, prerequisites: []string{"CS101"}},
	{code: "CS105", title: "Data Structures", year: 1, semester: "S2", fee: 1200, prerequisites: []string{"CS101", "CS102"}},
	{code: "CS201", title: "Algorithms", year: 2, semester: "S1", fee: 1400, prerequisites: []string{"CS105"}},
	{code: "CS202", title: "Databases", year: 2, semester: "S1", fee: 1400, prerequisites: []string{"CS104"}},
}

// CreateDefaultData creates the default admin and, with Options.Demo, a demo
// catalog. Running it again is a no-op.
func CreateDefaultData(ctx context.Context, stores Stores, adminService appServices.AdminService, opts Options, lgr zerolog.Logger) error {
	var finalErr error

	if err := createAdmin(ctx, stores.Admins, opts, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	if opts.Demo {
		if err := createDemoData(ctx, stores.Students, adminService, lgr); err != nil {
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}

func createAdmin(ctx context.Context, admins AdminCreator, opts Options, lgr zerolog.Logger) error {
	if opts.AdminUsername == "" || opts.AdminPassword == "" {
		lgr.Warn().Msg("Seed admin credentials not configured, skipping default admin")
		return nil
	}

	hash, err := auth.HashPassword(opts.AdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	created, err := admins.CreateIfMissing(ctx, &appModels.Admin{Username: opts.AdminUsername, Password: hash})
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating default admin")
		return err
	}
	if created {
		lgr.Info().Str("username", opts.AdminUsername).Msg("Default admin created")
	} else {
		lgr.Debug().Str("username", opts.AdminUsername).Msg("Default admin already exists")
	}
	return nil
}

func createDemoData(ctx context.Context, students StudentLookup, adminService appServices.AdminService, lgr zerolog.Logger) error {
	exists, err := students.ExistsByStudentID(ctx, DemoStudentID)
	if err != nil {
		return fmt.Errorf("failed to check demo student: %w", err)
	}
	if exists {
		lgr.Debug().Msg("Demo data already present")
		return nil
	}

	program, err := adminService.CreateProgram(ctx, &dto.CreateProgramRequest{
		Title:       "Computer Science",
		Description: "Bachelor of Computer Science",
		ProgramYear: 2025,
	})
	if err != nil {
		return fmt.Errorf("failed to create demo program: %w", err)
	}

	_, err = adminService.CreateStudent(ctx, &dto.CreateStudentRequest{
		StudentID: DemoStudentID,
		Password:  "student123",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.edu",
		ProgramID: program.ID,
	})
	if err != nil {
		return fmt.Errorf("failed to create demo student: %w", err)
	}

	var finalErr error
	for _, u := range demoUnits {
		_, err := adminService.CreateUnit(ctx, &dto.CreateUnitRequest{
			Title:           u.title,
			UnitCode:        u.code,
			SemesterOffered: u.semester,
			YearOffered:     u.year,
			UnitFee:         u.fee,
			ProgramID:       program.ID,
			Prerequisites:   u.prerequisites,
		})
		if err != nil {
			lgr.Error().Err(err).Str("unitCode", u.code).Msg("Error creating demo unit")
			finalErr = errors.Join(finalErr, err)
		}
	}

	lgr.Info().Int("units", len(demoUnits)).Str("studentId", DemoStudentID).Msg("Demo data created")
	return finalErr
}
