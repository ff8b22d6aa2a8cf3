package store

import (
	"context"
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/jonathan/resume-optimizer/internal/types"
)

//go:embed schema.sql
var schemaSQL string

// DB is a Store backed by a PostgreSQL connection pool
type DB struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string, logger *zap.Logger) (*DB, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, &StoreError{Op: "connect to database", Cause: err}
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, &StoreError{Op: "ping database", Cause: err}
	}

	return &DB{pool: pool, logger: logger}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// EnsureSchema creates the run table and its index when missing
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, schemaSQL); err != nil {
		return &StoreError{Op: "apply schema", Cause: err}
	}
	return nil
}

// PostingHash identifies a posting without storing its text
func PostingHash(posting string) string {
	sum := sha256.Sum256([]byte(posting))
	return hex.EncodeToString(sum[:])
}

// SaveRun stores a run. Saving the same run ID twice replaces it.
func (db *DB) SaveRun(ctx context.Context, result *types.OptimizationResult, posting string) error {
	if result == nil {
		return &StoreError{Op: "save run", Cause: errors.New("result is nil")}
	}
	summaryJSON, err := json.Marshal(result.Summary)
	if err != nil {
		return &StoreError{Op: "marshal summary", Cause: err}
	}
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return &StoreError{Op: "marshal result", Cause: err}
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO optimization_runs
		   (id, profile_id, posting_hash, original_score, estimated_score, rescored_score, summary, result, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (id) DO UPDATE SET
		   profile_id = $2, posting_hash = $3, original_score = $4, estimated_score = $5,
		   rescored_score = $6, summary = $7, result = $8, created_at = $9`,
		result.RunID, result.ProfileID, PostingHash(posting), result.OriginalScore,
		result.EstimatedScore, result.RescoredScore, summaryJSON, resultJSON, result.CreatedAt,
	)
	if err != nil {
		return &StoreError{Op: fmt.Sprintf("save run %s", result.RunID), Cause: err}
	}

	db.logger.Debug("saved optimization run",
		zap.String("run_id", result.RunID),
		zap.String("profile_id", result.ProfileID),
		zap.Int("changes", len(result.Changes)))
	return nil
}

// GetRun retrieves a stored run by ID
func (db *DB) GetRun(ctx context.Context, runID string) (*types.OptimizationResult, error) {
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT result FROM optimization_runs WHERE id = $1`,
		runID,
	).Scan(&content)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, &StoreError{Op: fmt.Sprintf("get run %s", runID), Cause: err}
	}

	var result types.OptimizationResult
	if err := json.Unmarshal(content, &result); err != nil {
		return nil, &StoreError{Op: "unmarshal run", Cause: err}
	}
	return &result, nil
}

// ListRuns returns a profile's runs, newest first
func (db *DB) ListRuns(ctx context.Context, profileID string, limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	rows, err := db.pool.Query(ctx,
		`SELECT id::text, profile_id, posting_hash, original_score, estimated_score,
		        rescored_score, summary, created_at
		 FROM optimization_runs
		 WHERE profile_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		profileID, limit,
	)
	if err != nil {
		return nil, &StoreError{Op: "list runs", Cause: err}
	}
	defer rows.Close()

	runs := []RunSummary{}
	for rows.Next() {
		var run RunSummary
		var summaryJSON []byte
		if err := rows.Scan(&run.RunID, &run.ProfileID, &run.PostingHash, &run.OriginalScore,
			&run.EstimatedScore, &run.RescoredScore, &summaryJSON, &run.CreatedAt); err != nil {
			return nil, &StoreError{Op: "scan run", Cause: err}
		}
		if err := json.Unmarshal(summaryJSON, &run.Summary); err != nil {
			return nil, &StoreError{Op: "unmarshal summary", Cause: err}
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, &StoreError{Op: "iterate runs", Cause: err}
	}
	return runs, nil
}

// ScoreHistory returns the composite score measured at each of a profile's runs, oldest first
func (db *DB) ScoreHistory(ctx context.Context, profileID string) ([]ScorePoint, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id::text, original_score, created_at
		 FROM optimization_runs
		 WHERE profile_id = $1
		 ORDER BY created_at ASC`,
		profileID,
	)
	if err != nil {
		return nil, &StoreError{Op: "query score history", Cause: err}
	}
	defer rows.Close()

	points := []ScorePoint{}
	for rows.Next() {
		var p ScorePoint
		if err := rows.Scan(&p.RunID, &p.Score, &p.CreatedAt); err != nil {
			return nil, &StoreError{Op: "scan score", Cause: err}
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, &StoreError{Op: "iterate score history", Cause: err}
	}
	return points, nil
}
