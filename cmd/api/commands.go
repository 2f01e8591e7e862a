package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/yigit/unirecords/internal/app/models/dto"
	"github.com/yigit/unirecords/internal/bootstrap"
	"github.com/yigit/unirecords/internal/pkg/auth"
	"github.com/yigit/unirecords/internal/pkg/validation"
	"github.com/yigit/unirecords/internal/server"
)

func rootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Student records API server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(configPath)
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", bootstrap.DefaultConfigPath, "Config file path (YAML)")

	cmd.AddCommand(
		serveCmd(&configPath),
		migrateCmd(&configPath),
		seedCmd(&configPath),
		hashPasswordCmd(),
		auditCmd(&configPath),
		versionCmd(),
	)
	return cmd
}

func serveCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(*configPath)
		},
	}
}

func runServe(configPath string) error {
	srv, err := server.NewServer(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}
	return srv.Run()
}

func migrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(*configPath)
			if err != nil {
				return err
			}
			// Apply explicitly below rather than through auto_migrate
			cfg.Database.AutoMigrate = false
			database, err := bootstrap.SetupDatabase(cfg, lgr)
			if err != nil {
				return err
			}
			defer database.Close()

			return bootstrap.RunMigrations(cmd.Context(), database, lgr)
		},
	}
}

func seedCmd(configPath *string) *cobra.Command {
	var demo bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the default admin and optional demo data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(*configPath)
			if err != nil {
				return err
			}
			database, err := bootstrap.SetupDatabase(cfg, lgr)
			if err != nil {
				return err
			}
			defer database.Close()

			deps := bootstrap.BuildDependencies(cfg, database, lgr)
			return bootstrap.SeedDefaults(cmd.Context(), cfg, deps, demo)
		},
	}

	cmd.Flags().BoolVar(&demo, "demo", false, "Also load a demo program, units and student")
	return cmd
}

func hashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password <password>",
		Short: "Print the bcrypt hash of a password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args[0]) < validation.PasswordMinLength {
				return fmt.Errorf("password must be at least %d characters", validation.PasswordMinLength)
			}
			hash, err := auth.HashPassword(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), hash)
			return err
		},
	}
}

func auditCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "audit <studentId>",
		Short: "Print a student's program audit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(*configPath)
			if err != nil {
				return err
			}
			cfg.Database.AutoMigrate = false
			database, err := bootstrap.SetupDatabase(cfg, lgr)
			if err != nil {
				return err
			}
			defer database.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			deps := bootstrap.BuildDependencies(cfg, database, lgr)
			audit, err := deps.Services.AuditService.GetFullAudit(ctx, args[0])
			if err != nil {
				return err
			}
			renderAudit(cmd.OutOrStdout(), audit)
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	}
}

// renderAudit prints the audit header and one table row per unit
func renderAudit(w io.Writer, audit *dto.FullAuditResponse) {
	if audit == nil {
		return
	}

	s := audit.Student
	color.New(color.FgCyan).Fprintf(w, "\n%s %s (%s)\n", s.FirstName, s.LastName, s.StudentID)
	fmt.Fprintf(w, "Program: %s %d\n\n", s.ProgramTitle, s.ProgramYear)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Code", "Title", "Year", "Semester", "Prerequisites", "Registered", "Grade", "Completed"})

	completed := 0
	for _, u := range audit.Units {
		grade := "-"
		if u.Grade != nil {
			grade = *u.Grade
		}
		if u.IsCompleted {
			completed++
		}
		prereqs := strings.Join(u.Prerequisites, ", ")
		if prereqs == "" {
			prereqs = "-"
		}
		table.Append([]string{
			u.UnitCode,
			u.Title,
			strconv.Itoa(u.YearOffered),
			u.SemesterOffered,
			prereqs,
			yesNo(u.IsRegistered),
			grade,
			yesNo(u.IsCompleted),
		})
	}
	table.Render()

	summary := color.New(color.FgYellow)
	if len(audit.Units) > 0 && completed == len(audit.Units) {
		summary = color.New(color.FgGreen)
	}
	summary.Fprintf(w, "\nCompleted %d of %d units\n", completed, len(audit.Units))
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
