package main

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgrange"
	"github.com/jackc/pgrange/log/zerologadapter"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
)

type QueryCmd struct {
	DatabaseURL string   `help:"PostgreSQL connection string. Defaults to database_url from the configuration." env:"DATABASE_URL"`
	LoadType    []string `help:"Custom range type to load before running the query. May be repeated."`
	SQL         string   `arg:"" help:"Query to run."`
	Args        []string `arg:"" optional:"" help:"Query arguments, sent as text."`
}

func (cmd *QueryCmd) Run(ctx context.Context, e *env) error {
	connString := cmd.DatabaseURL
	if connString == "" {
		connString = e.cfg.DatabaseURL
	}
	if connString == "" {
		return errors.New("no database url: use --database-url, DATABASE_URL or database_url in the configuration")
	}

	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return err
	}
	config.MaxConns = 1
	config.ConnConfig.Tracer = &tracelog.TraceLog{
		Logger:   zerologadapter.NewLogger(e.logger),
		LogLevel: zerologadapter.LogLevel(e.logger.GetLevel()),
	}

	loadTypes := append(append([]string{}, e.cfg.LoadTypes...), cmd.LoadType...)
	config.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		if len(loadTypes) > 0 {
			return pgrange.LoadTypes(ctx, conn, loadTypes...)
		}
		pgrange.RegisterDefaultPgTypes(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return err
	}
	defer pool.Close()

	conn, err := pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	args := make([]any, 0, len(cmd.Args)+1)
	args = append(args, pgx.QueryResultFormats{pgx.BinaryFormatCode})
	for _, a := range cmd.Args {
		args = append(args, a)
	}

	rows, err := conn.Query(ctx, cmd.SQL, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	m := conn.Conn().TypeMap()
	fields := rows.FieldDescriptions()

	names := make([]string, len(fields))
	for i, fd := range fields {
		names[i] = fd.Name
	}
	fmt.Fprintln(e.stdout, strings.Join(names, "\t"))

	for rows.Next() {
		values := rows.RawValues()
		cells := make([]string, len(values))
		for i, src := range values {
			cells[i], err = e.formatColumn(m, fields[i].DataTypeOID, src)
			if err != nil {
				return fmt.Errorf("column %s: %w", fields[i].Name, err)
			}
		}
		fmt.Fprintln(e.stdout, strings.Join(cells, "\t"))
	}

	return rows.Err()
}

// formatColumn decodes range columns with pgrange. Other columns are printed as hex.
func (e *env) formatColumn(m *pgtype.Map, oid uint32, src []byte) (string, error) {
	if src == nil {
		return "NULL", nil
	}

	dt, ok := m.TypeForOID(oid)
	if !ok {
		return hex.EncodeToString(src), nil
	}

	el, err := e.lookup(dt.Name)
	if err != nil {
		return hex.EncodeToString(src), nil
	}

	if !el.compatible(dt) {
		return "", fmt.Errorf("%s does not have the element type pgrange expects", dt.Name)
	}

	ti, s, err := el.decode(src)
	if err != nil {
		return "", err
	}
	if ti.RangeOID != 0 && ti.RangeOID != oid {
		e.logger.Warn().Uint32("oid", oid).Uint32("expected_oid", ti.RangeOID).Str("type", dt.Name).Msg("range oid mismatch")
	}

	return s, nil
}
