package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/lomasaltas/boxcode/internal/boxcode"
	"github.com/lomasaltas/boxcode/internal/cache"
	"github.com/lomasaltas/boxcode/internal/models"
	"github.com/lomasaltas/boxcode/internal/services"
	"github.com/lomasaltas/boxcode/internal/util"
	"github.com/spf13/cobra"
)

func newService() *services.ValidationService {
	return services.NewValidationService(cache.NewScanHistory(1), nil, nil, util.LoadPlantLocation(plantTZ))
}

func newValidateCmd() *cobra.Command {
	var (
		expected boxcode.ExpectedParams
		asOf     string
		asJSON   bool
	)
	cmd := &cobra.Command{
		Use:   "validate CODE...",
		Short: "Validate one or more box codes",
		Long: `Validates each code and prints its fields or the problems found.
Spaces and dashes inside a code are ignored. Exits non-zero when any code is invalid
or does not match the expected shift, format or company.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := newService()
			var ref *models.FlexibleDate
			if asOf != "" {
				d, err := models.ParseFlexibleDate(asOf)
				if err != nil {
					return err
				}
				ref = &d
			}

			out := cmd.OutOrStdout()
			results := make([]*models.ValidateResponse, 0, len(args))
			failed := 0
			for _, code := range args {
				req := &models.ValidateRequest{Code: code, AsOf: ref}
				if !expected.IsZero() {
					exp := expected
					req.Expected = &exp
				}
				resp := svc.Validate(context.Background(), cliStation, req)
				if !resp.IsValid || !resp.MatchesExpected {
					failed++
				}
				results = append(results, resp)
			}

			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(results); err != nil {
					return err
				}
			} else {
				for _, r := range results {
					printResult(out, r)
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d codes rejected", failed, len(args))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&expected.Shift, "shift", "", "expected shift")
	cmd.Flags().StringVar(&expected.Format, "format", "", "expected format")
	cmd.Flags().StringVar(&expected.Company, "company", "", "expected company")
	cmd.Flags().StringVar(&asOf, "as-of", "", "reference date for the year check (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print results as JSON")
	return cmd
}

func printResult(w io.Writer, r *models.ValidateResponse) {
	if r.IsValid {
		fmt.Fprintf(w, "%s VÁLIDO\n", r.Code)
	} else {
		fmt.Fprintf(w, "%s INVÁLIDO\n", r.Code)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, f := range r.Errors {
		fmt.Fprintf(tw, "  error\t%s\t%s\t%s\n", f.Field, f.Position, f.Message)
	}
	for _, f := range r.Warnings {
		fmt.Fprintf(tw, "  aviso\t%s\t%s\t%s\n", f.Field, f.Position, f.Message)
	}
	for _, lv := range r.Readable {
		fmt.Fprintf(tw, "  %s\t%s\n", lv.Label, lv.Value)
	}
	for _, c := range r.Comparisons {
		mark := "ok"
		if !c.Matches {
			mark = "DIFERENTE"
		}
		fmt.Fprintf(tw, "  %s\tesperado %s\tleído %s\t%s\n", c.Field, c.ExpectedLabel, c.ActualLabel, mark)
	}
	tw.Flush()
}

func newEncodeCmd() *cobra.Command {
	var (
		req models.EncodeRequest
		at  string
	)
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Build a box code",
		Long: `Builds a code from its fields. Day, week and year are taken from --at
(default now) in the plant timezone, as is the shift when --shift is omitted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if at != "" {
				d, err := models.ParseFlexibleDate(at)
				if err != nil {
					return err
				}
				req.ProducedAt = &d
			}
			resp, err := newService().Encode(&req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, resp.Code)
			if !resp.Result.IsValid {
				for _, f := range resp.Result.Errors {
					fmt.Fprintf(out, "  error\t%s\t%s\n", f.Field, f.Message)
				}
				return fmt.Errorf("code %s does not validate", resp.Code)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&req.Operator, "operator", 0, "operator number (00-99)")
	cmd.Flags().IntVar(&req.Packer, "packer", 1, "packer number (1-9)")
	cmd.Flags().StringVar(&req.Shift, "shift", "", "shift (1-3), derived from --at when empty")
	cmd.Flags().StringVar(&req.Caliber, "caliber", "", "caliber code (01-16)")
	cmd.Flags().StringVar(&req.Format, "format", "1", "format code (1-6)")
	cmd.Flags().StringVar(&req.Company, "company", "", "company code (1-5)")
	cmd.Flags().IntVar(&req.Counter, "counter", 1, "box counter (001-999)")
	cmd.Flags().StringVar(&at, "at", "", "production time (RFC3339, or YYYY-MM-DD for midnight in the plant timezone)")
	_ = cmd.MarkFlagRequired("caliber")
	_ = cmd.MarkFlagRequired("company")
	return cmd
}

func newReferenceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reference",
		Short: "Print the caliber, shift, format and company tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := boxcode.Reference()
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			sections := []struct {
				title string
				rows  []boxcode.CodeName
			}{
				{"Calibres", ref.Calibers},
				{"Turnos", ref.Shifts},
				{"Formatos", ref.Formats},
				{"Empresas", ref.Companies},
				{"Días", ref.Days},
			}
			for _, s := range sections {
				fmt.Fprintf(tw, "%s\n", s.title)
				for _, r := range s.rows {
					fmt.Fprintf(tw, "  %s\t%s\n", r.Code, r.Name)
				}
			}
			fmt.Fprintf(tw, "JUMBO\t%v\n", ref.JumboCalibers)
			return tw.Flush()
		},
	}
}
