package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"vdpcza/internal/config"
	"vdpcza/internal/infra"
	"vdpcza/internal/repositories"
	"vdpcza/internal/services"
	mem "vdpcza/pkg/memcache"
	"vdpcza/pkg/utils"
)

// env holds what every subcommand needs once the persistent pre-run has connected.
type env struct {
	cfg *config.Config
	log *zap.Logger
	db  *gorm.DB
}

var current env

var rootCmd = &cobra.Command{
	Use:           "admin",
	Short:         "Maintenance commands for the vdpcza database",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		log, err := infra.NewLogger(cfg.Log)
		if err != nil {
			return err
		}
		db, err := infra.InitPostgresql(cfg.Database, log)
		if err != nil {
			return err
		}
		current = env{cfg: cfg, log: log, db: db}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if current.db != nil {
			infra.ClosePostgresql(current.db, current.log)
		}
		if current.log != nil {
			_ = current.log.Sync()
		}
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := infra.RunMigrations(cmd.Context(), current.db); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
		return nil
	},
}

var promoteCmd = &cobra.Command{
	Use:   "promote <email>",
	Short: "Give an existing account the admin role",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := authService().Promote(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s is now an admin\n", args[0])
		return nil
	},
}

var setPasswordCmd = &cobra.Command{
	Use:   "set-password <email> <password>",
	Short: "Set the sign-in password of an account, creating it if needed",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := authService().SetPassword(cmd.Context(), args[0], args[1]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "password updated for %s\n", args[0])
		return nil
	},
}

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load quotes, trivia and bucket list items from a YAML file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(seedFile)
		if err != nil {
			return err
		}
		defer f.Close()

		seed, err := loadSeed(f)
		if err != nil {
			return fmt.Errorf("%s: %w", seedFile, err)
		}
		counts, err := applySeed(cmd.Context(), current.db, seed)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "seeded %d quotes, %d trivia questions, %d bucket list items\n",
			counts.Quotes, counts.Trivia, counts.BucketList)
		return nil
	},
}

// authService builds the account operations without mail or token storage,
// neither of which promote or set-password touch.
func authService() services.AuthServiceInterface {
	cfg := current.cfg
	return services.NewAuthService(
		repositories.NewAccountRepository(current.db),
		repositories.NewProfileRepository(current.db),
		nil,
		mem.NewTokens(),
		utils.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
		services.AuthSettings{
			Whitelist:  cfg.Auth.Whitelist(),
			AdminEmail: cfg.Auth.AdminEmail,
			OTPTTL:     cfg.Auth.OTPTTL,
			AppBaseURL: cfg.App.BaseURL,
		},
		current.log,
	)
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "seed.yaml", "path to the seed YAML file")
	rootCmd.AddCommand(migrateCmd, promoteCmd, setPasswordCmd, seedCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
