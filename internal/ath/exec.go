// Package ath runs Athena queries over the exported plays dataset and
// materializes season-level rollups.
package ath

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/athena"
	"github.com/aws/aws-sdk-go-v2/service/athena/types"
)

type Runner struct {
	Client    *athena.Client
	Workgroup string
	Database  string
	OutputS3  string // s3://bucket/prefix/
	Poll      time.Duration
	Logger    *log.Logger
}

func (r *Runner) poll() time.Duration {
	if r.Poll > 0 {
		return r.Poll
	}
	return 1 * time.Second
}

func (r *Runner) logf(format string, args ...any) {
	if r.Logger != nil {
		r.Logger.Printf(format, args...)
	}
}

// Exec starts a query and polls until it reaches a terminal state.
func (r *Runner) Exec(ctx context.Context, sql string) (*types.QueryExecution, error) {
	out, err := r.Client.StartQueryExecution(ctx, &athena.StartQueryExecutionInput{
		QueryString: &sql,
		QueryExecutionContext: &types.QueryExecutionContext{
			Database: &r.Database,
		},
		ResultConfiguration: &types.ResultConfiguration{
			OutputLocation: &r.OutputS3,
		},
		WorkGroup: &r.Workgroup,
	})
	if err != nil {
		return nil, fmt.Errorf("start query: %w", err)
	}
	qid := *out.QueryExecutionId
	r.logf("athena: qid=%s started", qid)

	tick := time.NewTicker(r.poll())
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-tick.C:
		}

		ge, err := r.Client.GetQueryExecution(ctx, &athena.GetQueryExecutionInput{
			QueryExecutionId: &qid,
		})
		if err != nil {
			return nil, fmt.Errorf("get query execution: %w", err)
		}
		switch ge.QueryExecution.Status.State {
		case types.QueryExecutionStateSucceeded:
			if stats := ge.QueryExecution.Statistics; stats != nil && stats.DataScannedInBytes != nil {
				r.logf("athena: qid=%s SUCCEEDED (scanned=%.3f MB)",
					qid, float64(*stats.DataScannedInBytes)/1024.0/1024.0)
			}
			return ge.QueryExecution, nil
		case types.QueryExecutionStateFailed:
			msg := ""
			if ge.QueryExecution.Status.StateChangeReason != nil {
				msg = *ge.QueryExecution.Status.StateChangeReason
			}
			return nil, errors.New("athena failed: " + msg)
		case types.QueryExecutionStateCancelled:
			return nil, errors.New("athena cancelled")
		default:
			// still running
		}
	}
}

// QueryInt runs a query expected to return a single numeric cell, e.g. a
// COUNT(*), and returns its value.
func (r *Runner) QueryInt(ctx context.Context, sql string) (int64, error) {
	exec, err := r.Exec(ctx, sql)
	if err != nil {
		return 0, err
	}
	gr, err := r.Client.GetQueryResults(ctx, &athena.GetQueryResultsInput{
		QueryExecutionId: exec.QueryExecutionId,
	})
	if err != nil {
		return 0, fmt.Errorf("get results: %w", err)
	}
	// row 0 is the header
	if len(gr.ResultSet.Rows) < 2 || len(gr.ResultSet.Rows[1].Data) < 1 || gr.ResultSet.Rows[1].Data[0].VarCharValue == nil {
		return 0, errors.New("unexpected scalar result shape")
	}
	var n int64
	if _, err := fmt.Sscan(*gr.ResultSet.Rows[1].Data[0].VarCharValue, &n); err != nil {
		return 0, fmt.Errorf("parse scalar: %w", err)
	}
	return n, nil
}

// MaterializeSeason drops and rebuilds the weekly play-type rollup for a
// season, then returns the row count as a sanity check.
func (r *Runner) MaterializeSeason(ctx context.Context, season int) (int64, error) {
	if _, err := r.Exec(ctx, BuildDrop(r.Database)); err != nil {
		return 0, fmt.Errorf("drop rollup: %w", err)
	}
	if _, err := r.Exec(ctx, BuildCTAS(r.Database, season)); err != nil {
		return 0, fmt.Errorf("materialize rollup: %w", err)
	}
	n, err := r.QueryInt(ctx, BuildCount(r.Database, season))
	if err != nil {
		return 0, fmt.Errorf("count rollup rows: %w", err)
	}
	r.logf("athena: rollup %s.%s season=%d rows=%d", r.Database, TableName, season, n)
	return n, nil
}
