package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jlap11/gestabiz-authz/internal/catalog"
	"github.com/jlap11/gestabiz-authz/internal/entities"
	"github.com/jlap11/gestabiz-authz/internal/infrastructure/config"
	"github.com/jlap11/gestabiz-authz/internal/infrastructure/metrics"
	"github.com/jlap11/gestabiz-authz/internal/infrastructure/snapshot"
	"github.com/jlap11/gestabiz-authz/internal/services/authorization"
	"github.com/jlap11/gestabiz-authz/internal/services/legacy"
	"github.com/jlap11/gestabiz-authz/pkg/cache"
	"github.com/jlap11/gestabiz-authz/pkg/cache/memorycache"
)

const (
	exitAllowed = 0
	exitDenied  = 1
	exitError   = 2
)

var (
	envFlag        string
	snapshotFlag   string
	anyFlag        bool
	allFlag        bool
	canProvideFlag bool

	cfg        *config.Config
	authorizer *authorization.Authorizer
	collector  *metrics.Collector
)

var rootCmd = &cobra.Command{
	Use:   "gestabiz-authz",
	Short: "Tenant authorization decision tool",
	Long: `Tenant authorization decision tool for Gestabiz.
Evaluates permission checks, role queries, and legacy permission
translations against an authorization snapshot file.`,
	PersistentPreRun: setup,
}

var checkCmd = &cobra.Command{
	Use:   "check <user> <permission...>",
	Short: "Check whether a user holds the given permission(s)",
	Long: `Check whether a user holds the given permission(s) in the snapshot's
business. With multiple permissions, all must be held unless --any is set.
Exits 0 when allowed, 1 when denied.`,
	Args: cobra.MinimumNArgs(2),
	Run:  runCheck,
}

var permissionsCmd = &cobra.Command{
	Use:   "permissions <user>",
	Short: "List the user's active permissions",
	Long:  `List every permission the user can currently exercise in the business.`,
	Args:  cobra.ExactArgs(1),
	Run:   runPermissions,
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the permission catalog grouped by category",
	Long:  `Print the full permission catalog with descriptions, grouped by category.`,
	Args:  cobra.NoArgs,
	Run:   runCatalog,
}

var convertLegacyCmd = &cobra.Command{
	Use:   "convert-legacy <legacy-permission...>",
	Short: "Translate legacy permission identifiers",
	Long: `Translate legacy coarse permission identifiers into the granular
permissions they stand for. Unknown identifiers translate to nothing.`,
	Args: cobra.MinimumNArgs(1),
	Run:  runConvertLegacy,
}

var roleCmd = &cobra.Command{
	Use:   "role <user>",
	Short: "Show the user's active business role",
	Long: `Show the user's active role in the snapshot's business. With
--can-provide-services, instead reports whether the user is a bookable
service provider (exits 0 when true, 1 when false).`,
	Args: cobra.ExactArgs(1),
	Run:  runRole,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&envFlag, "env", "e", "dev", "Environment to use (dev, test, prod)")
	rootCmd.PersistentFlags().StringVarP(&snapshotFlag, "snapshot", "s", "", "Path to the authorization snapshot file (overrides SNAPSHOT_PATH)")

	checkCmd.Flags().BoolVar(&anyFlag, "any", false, "Allow when any of the permissions is held")
	checkCmd.Flags().BoolVar(&allFlag, "all", false, "Require all permissions (default for multiple)")

	roleCmd.Flags().BoolVar(&canProvideFlag, "can-provide-services", false, "Report whether the user is a bookable service provider")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(permissionsCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(convertLegacyCmd)
	rootCmd.AddCommand(roleCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Failed to execute command: %v", err)
	}
}

func setup(cmd *cobra.Command, args []string) {
	if err := config.InitConfig(envFlag); err != nil {
		fail("Failed to initialize config: %v", err)
	}

	var err error
	cfg, err = config.Load()
	if err != nil {
		fail("Failed to load config: %v", err)
	}

	if cfg.Metrics.Enabled {
		collector = metrics.NewCollector()
	}

	var decisionCache cache.Cache
	if cfg.Cache.Enabled {
		decisionCache = memorycache.New(&memorycache.Config{
			MaxEntries:    cfg.Cache.MaxEntries,
			DefaultTTL:    cfg.Cache.TTL(),
			EnableMetrics: cfg.Metrics.Enabled,
		})
		if collector != nil {
			collector.SetCache(decisionCache)
		}
	}

	authorizer = authorization.NewAuthorizerWithCache(decisionCache, collector, cfg.Cache.TTL())
}

// loadSnapshot loads the snapshot file named by the --snapshot flag or the
// SNAPSHOT_PATH setting. Commands that operate on static data (catalog,
// convert-legacy) never call this.
func loadSnapshot() *snapshot.Snapshot {
	path := snapshotFlag
	if path == "" {
		path = cfg.Snapshot.Path
	}
	if path == "" {
		fail("No snapshot file: pass --snapshot or set SNAPSHOT_PATH")
	}

	s, err := snapshot.Load(path)
	if err != nil {
		fail("Failed to load snapshot: %v", err)
	}
	s.SetCollector(collector)
	return s
}

func runCheck(cmd *cobra.Command, args []string) {
	if anyFlag && allFlag {
		fail("--any and --all are mutually exclusive")
	}

	userID := args[0]
	required := make([]entities.Permission, 0, len(args)-1)
	for _, raw := range args[1:] {
		p := entities.Permission(raw)
		if !catalog.Contains(p) {
			// Unknown permissions are denied, not errors; still worth a note
			fmt.Fprintf(os.Stderr, "warning: %q is not a catalog permission\n", raw)
		}
		required = append(required, p)
	}

	s := loadSnapshot()
	req := checkRequest(s, userID)

	var allowed bool
	switch {
	case anyFlag:
		allowed = authorizer.CheckAny(context.Background(), req, required)
	case len(required) == 1:
		allowed = authorizer.Check(context.Background(), req, required[0])
	default:
		allowed = authorizer.CheckAll(context.Background(), req, required)
	}

	if allowed {
		fmt.Println("ALLOWED")
		os.Exit(exitAllowed)
	}
	fmt.Println("DENIED")
	os.Exit(exitDenied)
}

func runPermissions(cmd *cobra.Command, args []string) {
	userID := args[0]
	s := loadSnapshot()
	req := checkRequest(s, userID)

	active := authorizer.ActivePermissions(context.Background(), req)
	if len(active) == 0 {
		fmt.Printf("%s has no active permissions in business %s\n", userID, s.BusinessID)
		return
	}

	fmt.Printf("Active permissions for %s in business %s:\n", userID, s.BusinessID)
	for _, p := range active {
		fmt.Printf("  %-36s %s\n", p, catalog.Description(p))
	}
}

func runCatalog(cmd *cobra.Command, args []string) {
	for _, c := range catalog.Categories() {
		fmt.Printf("%s\n", c.Label)
		for _, p := range c.Permissions {
			fmt.Printf("  %-36s %s\n", p, catalog.Description(p))
		}
	}
	fmt.Printf("%d permissions in %d categories\n", len(catalog.All()), len(catalog.Categories()))
}

func runConvertLegacy(cmd *cobra.Command, args []string) {
	for _, raw := range args {
		known := legacy.IsKnown(raw)
		if !known {
			// Unknown identifiers translate to nothing, not an error
			fmt.Fprintf(os.Stderr, "warning: %q is not a known legacy permission (known: %s)\n",
				raw, strings.Join(legacy.KnownLegacyPermissions(), ", "))
		}
		if collector != nil {
			collector.RecordLegacyTranslation(known)
		}
	}

	converted := legacy.ConvertLegacy(args)
	if len(converted) == 0 {
		fmt.Println("No granular permissions (all identifiers unknown)")
		return
	}
	for _, p := range converted {
		fmt.Println(p)
	}
}

func runRole(cmd *cobra.Command, args []string) {
	userID := args[0]
	s := loadSnapshot()
	req := checkRequest(s, userID)

	if canProvideFlag {
		if authorizer.CanProvideServices(req) {
			fmt.Println("YES")
			os.Exit(exitAllowed)
		}
		fmt.Println("NO")
		os.Exit(exitDenied)
	}

	role, found := authorizer.Role(req)
	if !found {
		fmt.Printf("%s has no active role in business %s\n", userID, s.BusinessID)
		os.Exit(exitDenied)
	}
	fmt.Println(role)
}

// checkRequest assembles the evaluation request for one user from the
// snapshot. The snapshot file's modification time versions the loaded data
// for the decision cache.
func checkRequest(s *snapshot.Snapshot, userID string) *authorization.CheckRequest {
	now := time.Now()
	version := ""
	if info, err := os.Stat(snapshotPath()); err == nil {
		version = strconv.FormatInt(info.ModTime().UnixNano(), 10)
	}
	return &authorization.CheckRequest{
		UserID:          userID,
		OwnerID:         s.OwnerID,
		BusinessID:      s.BusinessID,
		Grants:          s.GrantsFor(userID, now),
		Roles:           s.RolesFor(userID),
		SnapshotVersion: version,
	}
}

func snapshotPath() string {
	if snapshotFlag != "" {
		return snapshotFlag
	}
	return cfg.Snapshot.Path
}

func fail(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(exitError)
}
