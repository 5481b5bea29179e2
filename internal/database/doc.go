// Package database provides the data access layer for the corpus.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup, migrations
//	├── corpus/          # Typed corpus queries with ordered preloads
//	└── audit/           # Compile run history
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type with domain-specific operations:
//
//	// Initialize database connection
//	db, err := database.NewDatabase("./pothi.db")
//
//	// Create domain-specific repositories
//	corpusRepo := corpus.NewRepository(db.DB)
//	auditRepo := audit.NewRepository(db.DB)
//
//	// Use repositories
//	sources, err := corpusRepo.Sources(ctx)
//	runs, err := auditRepo.RecentRuns(20)
//
// Every corpus query declares its joins and orderings statically: rows leave
// this layer pre-ordered (lines by order_id, shabads by sno, reference rows
// by key), so callers never re-sort retrieval results.
//
// # Interface Implementations
//
//   - corpus.Repository: implements compiler.CorpusStore and http.SearchStore
//   - audit.Repository: backs audit.Service, which implements http.RunStore
//
// Compile-time checks live in internal/interfaces.
package database
