package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/khalsafoundry/pothi/internal/audit"
	"github.com/khalsafoundry/pothi/internal/database"
	auditdb "github.com/khalsafoundry/pothi/internal/database/audit"
	"github.com/khalsafoundry/pothi/internal/database/corpus"
	"github.com/khalsafoundry/pothi/internal/services"
)

// CompileCommand runs a full corpus compile from the command line.
type CompileCommand struct {
	DatabasePath string
	OutputDir    string
	Workers      int
	BundlePath   string
	AuditDir     string
}

// NewCompileCommand creates a new CompileCommand
func NewCompileCommand() *CompileCommand {
	return &CompileCommand{}
}

// ParseFlags parses command line flags
func (cmd *CompileCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("compile", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", "./pothi.db", "Path to the corpus database file")
	fs.StringVar(&cmd.OutputDir, "output", "./build", "Output directory for compiled artifacts")
	fs.IntVar(&cmd.Workers, "workers", 4, "Number of concurrent source compilers")
	fs.StringVar(&cmd.BundlePath, "bundle", "", "Also write a compressed tarball of the artifacts to this path")
	fs.StringVar(&cmd.AuditDir, "audit-dir", "./audit", "Directory for per-run report files (empty to disable)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s compile [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Compile the corpus database into denormalized JSON artifacts.\n\n")
		fmt.Fprintf(os.Stderr, "This command:\n")
		fmt.Fprintf(os.Stderr, "  1. Reads the relational corpus (sources, shabads, lines, banis)\n")
		fmt.Fprintf(os.Stderr, "  2. Builds one JSON artifact per reference table, bani catalog and page\n")
		fmt.Fprintf(os.Stderr, "  3. Atomically replaces the output directory with the new artifact set\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s compile\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s compile -db /data/pothi.db -output /srv/artifacts\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s compile -bundle ./pothi-artifacts.tar.xz\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s compile -workers 8 -audit-dir ./audit\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	return nil
}

// Run executes the compile command
func (cmd *CompileCommand) Run() error {
	fmt.Println("📖 Pothi Compiler")
	fmt.Println("=================")

	// Convert paths to absolute
	absDBPath, err := filepath.Abs(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for database: %w", err)
	}
	cmd.DatabasePath = absDBPath

	absOutputDir, err := filepath.Abs(cmd.OutputDir)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for output: %w", err)
	}
	cmd.OutputDir = absOutputDir

	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	fmt.Printf("📁 Database: %s\n", cmd.DatabasePath)
	fmt.Printf("📁 Output: %s\n", cmd.OutputDir)
	if cmd.BundlePath != "" {
		fmt.Printf("📁 Bundle: %s\n", cmd.BundlePath)
	}

	var auditor *audit.Auditor
	if cmd.AuditDir != "" {
		auditor = audit.NewAuditor(cmd.AuditDir)
	}
	auditService := audit.NewService(auditdb.NewRepository(db.DB), auditor)

	compileService := services.NewCompileService(
		corpus.NewRepository(db.DB),
		auditService,
		services.CompileConfig{
			OutputDir:  cmd.OutputDir,
			Workers:    cmd.Workers,
			BundlePath: cmd.BundlePath,
		},
	)

	// Ctrl-C aborts the run and discards its staging directory
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("\n⚙️  Compiling with %d workers...\n", cmd.Workers)

	report, err := compileService.Run(ctx, "cli")
	if err != nil {
		return fmt.Errorf("compile failed: %w", err)
	}

	fmt.Printf("\n✅ Compile complete!\n")
	fmt.Printf("  🆔 Run: %s\n", report.RunID)
	fmt.Printf("  📦 Artifacts: %d\n", report.Artifacts)
	fmt.Printf("  ⏱  Duration: %s\n", (time.Duration(report.DurationMS) * time.Millisecond).Round(time.Millisecond))

	if len(report.Warnings) > 0 {
		fmt.Printf("\n⚠️  %d integrity warnings:\n", len(report.Warnings))
		for _, warning := range report.Warnings {
			fmt.Printf("  - %s\n", warning.String())
		}
	}

	return nil
}
