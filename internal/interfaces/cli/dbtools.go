package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhoicas/gestion-patrimonial/internal/domain"
	"github.com/jhoicas/gestion-patrimonial/internal/infrastructure/sqlite"
)

const sampleRows = 5

// NewSetupCommand crea o actualiza la estructura de la base.
func NewSetupCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "setup_db",
		Short:         "Crea las tablas que falten en la base de datos",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := app.Config.DB.Path
			out := cmd.OutOrStdout()
			if fileExists(path) {
				app.Log.Warn().Str("db", path).Msg("la base de datos ya existe")
				yes, _ := cmd.Flags().GetBool("si")
				if !yes && !confirm(cmd.InOrStdin(), out, "¿Desea continuar y actualizar la estructura? (s/n): ") {
					app.Log.Info().Msg("configuración de la base cancelada")
					fmt.Fprintln(out, "Operación cancelada.")
					return nil
				}
			}
			if err := sqlite.EnsureSchema(cmd.Context(), app.Config.DB, app.Log); err != nil {
				return fmt.Errorf("error configurando la base de datos, revise el log: %w", err)
			}
			fmt.Fprintf(out, "Base de datos configurada correctamente: %s\n", path)
			return nil
		},
	}
	cmd.Flags().Bool("si", false, "no pedir confirmación si la base ya existe")
	return cmd
}

// NewCheckCommand muestra estructura, cantidad y primeros registros de una tabla. Solo lectura.
func NewCheckCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "check_db [tabla]",
		Short:         "Inspecciona una tabla (por defecto familias) sin modificar nada",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := app.Config.DB.Path
			if !fileExists(path) {
				return fmt.Errorf("%w: %s", domain.ErrDatabaseNotFound, path)
			}
			names := []string{sqlite.TableFamilies}
			if all, _ := cmd.Flags().GetBool("todas"); all {
				names = names[:0]
				for _, def := range sqlite.Tables() {
					names = append(names, def.Name)
				}
			} else if len(args) == 1 {
				names = []string{args[0]}
			}
			for _, name := range names {
				if err := checkTable(cmd, app, name); err != nil {
					return fmt.Errorf("error al acceder a la base de datos: %w", err)
				}
			}
			return nil
		},
	}
	cmd.Flags().Bool("todas", false, "inspecciona todas las tablas del esquema")
	return cmd
}

func checkTable(cmd *cobra.Command, app *App, name string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	info, err := app.Inspector.Inspect(ctx, name, sampleRows)
	if err != nil {
		return err
	}
	if !info.Exists {
		fmt.Fprintf(out, "La tabla '%s' no existe\n", name)
		return nil
	}

	fmt.Fprintf(out, "\nEstructura de la tabla %s:\n", name)
	cols := make([][]string, 0, len(info.Columns))
	for _, c := range info.Columns {
		cols = append(cols, []string{c.Name, c.Type, yesNo(c.NotNull), yesNo(c.PrimaryKey), c.Default})
	}
	if err := printTable(out, []string{"COLUMNA", "TIPO", "NOT NULL", "PK", "DEFAULT"}, cols); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nRegistros en %s: %d\n", name, info.RowCount)
	if len(info.Sample) > 0 {
		fmt.Fprintf(out, "\nPrimeros %d registros:\n", len(info.Sample))
		rows := make([][]string, 0, len(info.Sample))
		for _, r := range info.Sample {
			vals := make([]string, 0, r.Len())
			for _, v := range r.Values() {
				vals = append(vals, sqlite.FormatValue(v))
			}
			rows = append(rows, vals)
		}
		if err := printTable(out, info.Sample[0].Columns(), rows); err != nil {
			return err
		}
	}

	missing, _, err := app.Inspector.CheckTable(ctx, name)
	switch {
	case errors.Is(err, domain.ErrSchemaMismatch):
		fmt.Fprintf(out, "\nAtención: faltan las columnas %s; ejecute fix_db para repararla\n", strings.Join(missing, ", "))
	case errors.Is(err, domain.ErrUnknownTable):
		// tabla ajena al esquema: solo se muestra
	case err != nil:
		return err
	}
	return nil
}

// NewFixCommand repara tablas cuya estructura no coincide con la esperada.
func NewFixCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "fix_db",
		Short:         "Repara la estructura de la base (crea un respaldo antes de modificar)",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				reports []*sqlite.RepairReport
				err     error
			)
			if table := stringFlag(cmd, "tabla"); table != "" {
				var rep *sqlite.RepairReport
				rep, err = app.Repairer.RepairTable(cmd.Context(), table)
				if rep != nil {
					reports = append(reports, rep)
				}
			} else {
				reports, err = app.Repairer.RepairAll(cmd.Context())
			}
			if err != nil {
				if backup := backupPath(reports); backup != "" {
					fmt.Fprintf(cmd.ErrOrStderr(), "Se creó un respaldo antes de intentar la reparación: %s\n", backup)
				}
				return fmt.Errorf("error reparando la estructura, revise el log: %w", err)
			}

			out := cmd.OutOrStdout()
			for _, rep := range reports {
				printRepairReport(out, rep)
			}
			fmt.Fprintln(out, "Estructura de la base reparada correctamente.")
			return nil
		},
	}
	cmd.Flags().String("tabla", "", "repara solo esta tabla")
	return cmd
}

// backupPath respaldo tomado en esta ejecución; "" si no se llegó a respaldar.
func backupPath(reports []*sqlite.RepairReport) string {
	for _, rep := range reports {
		if rep.BackupPath != "" {
			return rep.BackupPath
		}
	}
	return ""
}

func printRepairReport(w io.Writer, rep *sqlite.RepairReport) {
	switch {
	case !rep.Exists:
		fmt.Fprintf(w, "%s: no existía, se crea\n", rep.Table)
	case !rep.Repaired:
		fmt.Fprintf(w, "%s: estructura correcta\n", rep.Table)
	default:
		fmt.Fprintf(w, "%s: reparada (faltaban %s)\n", rep.Table, strings.Join(rep.MissingColumns, ", "))
		fmt.Fprintf(w, "  respaldo: %s\n", rep.BackupPath)
		fmt.Fprintf(w, "  registros restaurados: %d\n", rep.Restored)
		if len(rep.DroppedColumns) > 0 {
			fmt.Fprintf(w, "  columnas descartadas: %s\n", strings.Join(rep.DroppedColumns, ", "))
		}
		if len(rep.Unmapped) > 0 {
			fmt.Fprintf(w, "  registros sin restaurar (quedan en el respaldo): %d\n", len(rep.Unmapped))
			for _, u := range rep.Unmapped {
				fmt.Fprintf(w, "    - %s: %s\n", formatValues(u.Values), u.Reason)
			}
		}
	}
}

func formatValues(values map[string]any) string {
	parts := make([]string, 0, len(values))
	for _, k := range slices.Sorted(maps.Keys(values)) {
		parts = append(parts, k+"="+sqlite.FormatValue(values[k]))
	}
	return strings.Join(parts, " ")
}

func confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprint(out, prompt)
	line, _ := bufio.NewReader(in).ReadString('\n')
	return strings.EqualFold(strings.TrimSpace(line), "s")
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func yesNo(b bool) string {
	if b {
		return "sí"
	}
	return "no"
}
