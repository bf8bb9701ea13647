package main

import (
	"ThynxSite/internal/api/admin"
	adminRepository "ThynxSite/internal/api/admin/repository"
	adminService "ThynxSite/internal/api/admin/service"
	blogRepository "ThynxSite/internal/api/blog/repository"
	"ThynxSite/internal/config"
	"ThynxSite/internal/seed"
	"ThynxSite/pkg/bcrypt"
	"ThynxSite/pkg/utils"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create missing tables and indexes",
	RunE: func(cmd *cobra.Command, _ []string) error {
		rt, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.close()

		rt.log.Info("Database schema is up to date")
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replace all blog posts with today's selection",
	RunE: func(cmd *cobra.Command, _ []string) error {
		rt, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.close()

		return seed.New(blogRepository.New(rt.db, rt.log), utils.New(), rt.log).Run(cmd.Context())
	},
}

var pinCmd = &cobra.Command{
	Use:   "pin",
	Short: "Manage the admin PIN",
}

var pinSetCmd = &cobra.Command{
	Use:   "set <pin>",
	Short: "Set or replace the admin PIN",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.NewValidator().Var(args[0], "required,len=4,number"); err != nil {
			return admin.ErrInvalidPin
		}

		rt, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.close()

		svc := adminService.NewAdminService(rt.log, adminRepository.New(rt.db, rt.log), bcrypt.New(), utils.New())
		if err := svc.ReplacePIN(cmd.Context(), args[0]); err != nil {
			return err
		}

		rt.log.Info("Admin PIN updated")
		return nil
	},
}

var pinResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Remove the admin PIN so it can be set again from the site",
	RunE: func(cmd *cobra.Command, _ []string) error {
		rt, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.close()

		svc := adminService.NewAdminService(rt.log, adminRepository.New(rt.db, rt.log), bcrypt.New(), utils.New())
		if err := svc.ResetPIN(cmd.Context()); err != nil {
			return err
		}

		rt.log.Info("Admin PIN removed")
		return nil
	},
}
