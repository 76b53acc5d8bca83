package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/gestion-patrimonial/internal/application/dto"
)

// tab operaciones de una pestaña de entidad. R es el DTO de salida.
type tab[R any] struct {
	use     string
	short   string
	headers []string
	row     func(R) []string

	// flags registra los flags de crear y actualizar (los mismos para ambos).
	flags  func(cmd *cobra.Command)
	create func(cmd *cobra.Command) (*R, error)
	update func(cmd *cobra.Command, id int64) (*R, error)

	list   func(ctx context.Context, opts dto.ListOptions) ([]R, error)
	get    func(ctx context.Context, id int64) (*R, error)
	remove func(ctx context.Context, id int64) error
}

// command arma "<pestaña> listar|ver|crear|actualizar|eliminar".
func (t tab[R]) command() *cobra.Command {
	root := &cobra.Command{
		Use:   t.use,
		Short: t.short,
	}
	root.AddCommand(t.listCmd(), t.getCmd(), t.createCmd(), t.updateCmd(), t.deleteCmd())
	return root
}

func (t tab[R]) listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listar",
		Short: "Lista los registros",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sortByName, _ := cmd.Flags().GetBool("ordenar")
			items, err := t.list(cmd.Context(), dto.ListOptions{
				Search:     stringFlag(cmd, "buscar"),
				SortByName: sortByName,
			})
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(items))
			for _, it := range items {
				rows = append(rows, t.row(it))
			}
			return printTable(cmd.OutOrStdout(), t.headers, rows)
		},
	}
	cmd.Flags().String("buscar", "", "filtra por nombre (sin distinguir mayúsculas ni acentos)")
	cmd.Flags().Bool("ordenar", false, "ordena por nombre en lugar de por ID")
	return cmd
}

func (t tab[R]) getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ver <id>",
		Short: "Muestra un registro",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			item, err := t.get(cmd.Context(), id)
			if err != nil {
				return err
			}
			return t.print(cmd, item)
		},
	}
}

func (t tab[R]) createCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crear",
		Short: "Agrega un registro",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			item, err := t.create(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "registro agregado")
			return t.print(cmd, item)
		},
	}
	t.flags(cmd)
	return cmd
}

func (t tab[R]) updateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "actualizar <id>",
		Short: "Modifica los campos indicados de un registro",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			item, err := t.update(cmd, id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "registro actualizado")
			return t.print(cmd, item)
		},
	}
	t.flags(cmd)
	return cmd
}

func (t tab[R]) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eliminar <id>",
		Short: "Elimina un registro",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := t.remove(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "registro %d eliminado de %s\n", id, t.use)
			return nil
		},
	}
}

func (t tab[R]) print(cmd *cobra.Command, item *R) error {
	return printTable(cmd.OutOrStdout(), t.headers, [][]string{t.row(*item)})
}
