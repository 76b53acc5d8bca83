package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jhoicas/gestion-patrimonial/internal/infrastructure/sqlite"
)

func newExportCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exportar [tabla...]",
		Short: "Exporta tablas a una planilla Excel (sin argumentos, todas)",
		RunE: func(cmd *cobra.Command, args []string) error {
			tables := args
			if len(tables) == 0 {
				for _, def := range sqlite.Tables() {
					tables = append(tables, def.Name)
				}
			}
			data, name, err := app.Export.Export(cmd.Context(), tables)
			if err != nil {
				return err
			}
			path, err := writeOutput(outputDir(cmd, app), name, data)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "planilla generada: %s\n", path)
			return nil
		},
	}
	cmd.Flags().String("salida", "", "directorio de destino (por defecto EXPORT_DIR)")
	return cmd
}

func newReportCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "informe",
		Short: "Informes en PDF",
	}
	agent := &cobra.Command{
		Use:   "agente <id>",
		Short: "Constancia de bienes asignados a un agente",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			data, name, err := app.Certificates.AgentCertificate(cmd.Context(), id)
			if err != nil {
				return err
			}
			path, err := writeOutput(outputDir(cmd, app), name, data)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "constancia generada: %s\n", path)
			return nil
		},
	}
	agent.Flags().String("salida", "", "directorio de destino (por defecto EXPORT_DIR)")
	root.AddCommand(agent)
	return root
}

func outputDir(cmd *cobra.Command, app *App) string {
	if dir := stringFlag(cmd, "salida"); dir != "" {
		return dir
	}
	return app.Config.Export.Dir
}

func writeOutput(dir, name string, data []byte) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("crear directorio de salida: %w", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("guardar %s: %w", name, err)
	}
	return path, nil
}
