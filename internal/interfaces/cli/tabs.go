package cli

import (
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/jhoicas/gestion-patrimonial/internal/application/dto"
)

// tabCommands una pestaña por entidad.
func tabCommands(app *App) []*cobra.Command {
	return []*cobra.Command{
		categoryTab(app).command(),
		familyTab(app).command(),
		subfamilyTab(app).command(),
		articleTab(app).command(),
		patrimonyTab(app).command(),
		agentTab(app).command(),
		brandTab(app).command(),
		supplierTab(app).command(),
		stockTab(app).command(),
		serialNumberTab(app).command(),
	}
}

func idText(id int64) string { return strconv.FormatInt(id, 10) }

func priceText(p decimal.NullDecimal) string {
	if !p.Valid {
		return ""
	}
	return p.Decimal.StringFixed(2)
}

func categoryTab(app *App) tab[dto.CategoryResponse] {
	return tab[dto.CategoryResponse]{
		use:     "categorias",
		short:   "Categorías de artículos",
		headers: []string{"ID", "NOMBRE", "DESCRIPCIÓN"},
		row: func(c dto.CategoryResponse) []string {
			return []string{idText(c.ID), c.Name, c.Description}
		},
		flags: func(cmd *cobra.Command) {
			cmd.Flags().String("nombre", "", "nombre de la categoría")
			cmd.Flags().String("descripcion", "", "descripción")
		},
		create: func(cmd *cobra.Command) (*dto.CategoryResponse, error) {
			return app.Categories.Create(cmd.Context(), dto.CreateCategoryRequest{
				Name:        stringFlag(cmd, "nombre"),
				Description: stringFlag(cmd, "descripcion"),
			})
		},
		update: func(cmd *cobra.Command, id int64) (*dto.CategoryResponse, error) {
			return app.Categories.Update(cmd.Context(), id, dto.UpdateCategoryRequest{
				Name:        changedString(cmd, "nombre"),
				Description: changedString(cmd, "descripcion"),
			})
		},
		list:   app.Categories.List,
		get:    app.Categories.GetByID,
		remove: app.Categories.Delete,
	}
}

func familyTab(app *App) tab[dto.FamilyResponse] {
	return tab[dto.FamilyResponse]{
		use:     "familias",
		short:   "Familias de bienes",
		headers: []string{"ID", "NOMBRE"},
		row: func(f dto.FamilyResponse) []string {
			return []string{idText(f.ID), f.Name}
		},
		flags: func(cmd *cobra.Command) {
			cmd.Flags().String("nombre", "", "nombre de la familia")
		},
		create: func(cmd *cobra.Command) (*dto.FamilyResponse, error) {
			return app.Families.Create(cmd.Context(), dto.CreateFamilyRequest{Name: stringFlag(cmd, "nombre")})
		},
		update: func(cmd *cobra.Command, id int64) (*dto.FamilyResponse, error) {
			return app.Families.Update(cmd.Context(), id, dto.UpdateFamilyRequest{Name: changedString(cmd, "nombre")})
		},
		list:   app.Families.List,
		get:    app.Families.GetByID,
		remove: app.Families.Delete,
	}
}

func subfamilyTab(app *App) tab[dto.SubfamilyResponse] {
	return tab[dto.SubfamilyResponse]{
		use:     "subfamilias",
		short:   "Subfamilias, cada una opcionalmente dentro de una familia",
		headers: []string{"ID", "NOMBRE", "ID FAMILIA", "FAMILIA"},
		row: func(s dto.SubfamilyResponse) []string {
			return []string{idText(s.ID), s.Name, formatID(s.FamilyID), s.FamilyName}
		},
		flags: func(cmd *cobra.Command) {
			cmd.Flags().String("nombre", "", "nombre de la subfamilia")
			cmd.Flags().Int64("familia", 0, "ID de la familia (0 la quita)")
		},
		create: func(cmd *cobra.Command) (*dto.SubfamilyResponse, error) {
			return app.Subfamilies.Create(cmd.Context(), dto.CreateSubfamilyRequest{
				Name:     stringFlag(cmd, "nombre"),
				FamilyID: changedInt(cmd, "familia"),
			})
		},
		update: func(cmd *cobra.Command, id int64) (*dto.SubfamilyResponse, error) {
			return app.Subfamilies.Update(cmd.Context(), id, dto.UpdateSubfamilyRequest{
				Name:     changedString(cmd, "nombre"),
				FamilyID: changedInt(cmd, "familia"),
			})
		},
		list:   app.Subfamilies.List,
		get:    app.Subfamilies.GetByID,
		remove: app.Subfamilies.Delete,
	}
}

func articleTab(app *App) tab[dto.ArticleResponse] {
	return tab[dto.ArticleResponse]{
		use:     "articulos",
		short:   "Artículos con categoría, marca y proveedor",
		headers: []string{"ID", "NOMBRE", "DESCRIPCIÓN", "CATEGORÍA", "MARCA", "PROVEEDOR", "PRECIO"},
		row: func(a dto.ArticleResponse) []string {
			return []string{idText(a.ID), a.Name, a.Description, a.CategoryName, a.BrandName, a.SupplierName,
				priceText(a.Price)}
		},
		flags: func(cmd *cobra.Command) {
			cmd.Flags().String("nombre", "", "nombre del artículo")
			cmd.Flags().String("descripcion", "", "descripción")
			cmd.Flags().Int64("categoria", 0, "ID de la categoría (0 la quita)")
			cmd.Flags().Int64("marca", 0, "ID de la marca (0 la quita)")
			cmd.Flags().Int64("proveedor", 0, "ID del proveedor (0 lo quita)")
			cmd.Flags().String("precio", "", "precio unitario, por ejemplo 1500,50")
		},
		create: func(cmd *cobra.Command) (*dto.ArticleResponse, error) {
			price, err := changedDecimal(cmd, "precio")
			if err != nil {
				return nil, err
			}
			in := dto.CreateArticleRequest{
				Name:        stringFlag(cmd, "nombre"),
				Description: stringFlag(cmd, "descripcion"),
				CategoryID:  changedInt(cmd, "categoria"),
				BrandID:     changedInt(cmd, "marca"),
				SupplierID:  changedInt(cmd, "proveedor"),
				Price:       price,
			}
			return app.Articles.Create(cmd.Context(), in)
		},
		update: func(cmd *cobra.Command, id int64) (*dto.ArticleResponse, error) {
			price, err := changedDecimal(cmd, "precio")
			if err != nil {
				return nil, err
			}
			return app.Articles.Update(cmd.Context(), id, dto.UpdateArticleRequest{
				Name:        changedString(cmd, "nombre"),
				Description: changedString(cmd, "descripcion"),
				CategoryID:  changedInt(cmd, "categoria"),
				BrandID:     changedInt(cmd, "marca"),
				SupplierID:  changedInt(cmd, "proveedor"),
				Price:       price,
			})
		},
		list:   app.Articles.List,
		get:    app.Articles.GetByID,
		remove: app.Articles.Delete,
	}
}

func patrimonyTab(app *App) tab[dto.PatrimonyResponse] {
	return tab[dto.PatrimonyResponse]{
		use:     "patrimonio",
		short:   "Números de patrimonio asignados a artículos y agentes",
		headers: []string{"ID", "NÚMERO", "ARTÍCULO", "AGENTE", "ASIGNADO", "ESTADO"},
		row: func(p dto.PatrimonyResponse) []string {
			return []string{idText(p.ID), p.Number, p.ArticleName, p.AgentName, p.AssignedOn, p.Status}
		},
		flags: func(cmd *cobra.Command) {
			cmd.Flags().String("numero", "", "número de patrimonio")
			cmd.Flags().Int64("articulo", 0, "ID del artículo (0 lo quita)")
			cmd.Flags().Int64("agente", 0, "ID del agente (0 lo quita)")
			cmd.Flags().String("fecha", "", "fecha de asignación AAAA-MM-DD")
			cmd.Flags().String("estado", "", "estado del bien")
		},
		create: func(cmd *cobra.Command) (*dto.PatrimonyResponse, error) {
			return app.Patrimony.Create(cmd.Context(), dto.CreatePatrimonyRequest{
				Number:     stringFlag(cmd, "numero"),
				ArticleID:  changedInt(cmd, "articulo"),
				AgentID:    changedInt(cmd, "agente"),
				AssignedOn: stringFlag(cmd, "fecha"),
				Status:     stringFlag(cmd, "estado"),
			})
		},
		update: func(cmd *cobra.Command, id int64) (*dto.PatrimonyResponse, error) {
			return app.Patrimony.Update(cmd.Context(), id, dto.UpdatePatrimonyRequest{
				Number:     changedString(cmd, "numero"),
				ArticleID:  changedInt(cmd, "articulo"),
				AgentID:    changedInt(cmd, "agente"),
				AssignedOn: changedString(cmd, "fecha"),
				Status:     changedString(cmd, "estado"),
			})
		},
		list:   app.Patrimony.List,
		get:    app.Patrimony.GetByID,
		remove: app.Patrimony.Delete,
	}
}

func agentTab(app *App) tab[dto.AgentResponse] {
	return tab[dto.AgentResponse]{
		use:     "agentes",
		short:   "Agentes responsables de bienes",
		headers: []string{"ID", "APELLIDO Y NOMBRE", "LEGAJO", "DEPARTAMENTO"},
		row: func(a dto.AgentResponse) []string {
			return []string{idText(a.ID), a.FullName, a.EmployeeID, a.Department}
		},
		flags: func(cmd *cobra.Command) {
			cmd.Flags().String("nombre", "", "nombre")
			cmd.Flags().String("apellido", "", "apellido")
			cmd.Flags().String("legajo", "", "legajo")
			cmd.Flags().String("departamento", "", "departamento")
		},
		create: func(cmd *cobra.Command) (*dto.AgentResponse, error) {
			return app.Agents.Create(cmd.Context(), dto.CreateAgentRequest{
				FirstName:  stringFlag(cmd, "nombre"),
				LastName:   stringFlag(cmd, "apellido"),
				EmployeeID: stringFlag(cmd, "legajo"),
				Department: stringFlag(cmd, "departamento"),
			})
		},
		update: func(cmd *cobra.Command, id int64) (*dto.AgentResponse, error) {
			return app.Agents.Update(cmd.Context(), id, dto.UpdateAgentRequest{
				FirstName:  changedString(cmd, "nombre"),
				LastName:   changedString(cmd, "apellido"),
				EmployeeID: changedString(cmd, "legajo"),
				Department: changedString(cmd, "departamento"),
			})
		},
		list:   app.Agents.List,
		get:    app.Agents.GetByID,
		remove: app.Agents.Delete,
	}
}

func brandTab(app *App) tab[dto.BrandResponse] {
	return tab[dto.BrandResponse]{
		use:     "marcas",
		short:   "Marcas",
		headers: []string{"ID", "MARCA"},
		row: func(b dto.BrandResponse) []string {
			return []string{idText(b.ID), b.Name}
		},
		flags: func(cmd *cobra.Command) {
			cmd.Flags().String("nombre", "", "nombre de la marca")
		},
		create: func(cmd *cobra.Command) (*dto.BrandResponse, error) {
			return app.Brands.Create(cmd.Context(), dto.CreateBrandRequest{Name: stringFlag(cmd, "nombre")})
		},
		update: func(cmd *cobra.Command, id int64) (*dto.BrandResponse, error) {
			return app.Brands.Update(cmd.Context(), id, dto.UpdateBrandRequest{Name: changedString(cmd, "nombre")})
		},
		list:   app.Brands.List,
		get:    app.Brands.GetByID,
		remove: app.Brands.Delete,
	}
}

func supplierTab(app *App) tab[dto.SupplierResponse] {
	return tab[dto.SupplierResponse]{
		use:     "proveedores",
		short:   "Proveedores",
		headers: []string{"ID", "NOMBRE", "DIRECCIÓN", "TELÉFONO", "EMAIL", "CONTACTO"},
		row: func(s dto.SupplierResponse) []string {
			return []string{idText(s.ID), s.Name, s.Address, s.Phone, s.Email, s.Contact}
		},
		flags: func(cmd *cobra.Command) {
			cmd.Flags().String("nombre", "", "razón social")
			cmd.Flags().String("direccion", "", "dirección")
			cmd.Flags().String("telefono", "", "teléfono")
			cmd.Flags().String("email", "", "correo electrónico")
			cmd.Flags().String("contacto", "", "persona de contacto")
		},
		create: func(cmd *cobra.Command) (*dto.SupplierResponse, error) {
			return app.Suppliers.Create(cmd.Context(), dto.CreateSupplierRequest{
				Name:    stringFlag(cmd, "nombre"),
				Address: stringFlag(cmd, "direccion"),
				Phone:   stringFlag(cmd, "telefono"),
				Email:   stringFlag(cmd, "email"),
				Contact: stringFlag(cmd, "contacto"),
			})
		},
		update: func(cmd *cobra.Command, id int64) (*dto.SupplierResponse, error) {
			return app.Suppliers.Update(cmd.Context(), id, dto.UpdateSupplierRequest{
				Name:    changedString(cmd, "nombre"),
				Address: changedString(cmd, "direccion"),
				Phone:   changedString(cmd, "telefono"),
				Email:   changedString(cmd, "email"),
				Contact: changedString(cmd, "contacto"),
			})
		},
		list:   app.Suppliers.List,
		get:    app.Suppliers.GetByID,
		remove: app.Suppliers.Delete,
	}
}

func stockTab(app *App) tab[dto.StockResponse] {
	return tab[dto.StockResponse]{
		use:     "stock",
		short:   "Existencias por artículo y ubicación",
		headers: []string{"ID", "ARTÍCULO", "CANTIDAD", "UBICACIÓN", "INGRESO", "NOTAS"},
		row: func(s dto.StockResponse) []string {
			return []string{idText(s.ID), s.ArticleName, strconv.FormatInt(s.Quantity, 10), s.Location,
				s.IntakeDate, s.Notes}
		},
		flags: func(cmd *cobra.Command) {
			cmd.Flags().Int64("articulo", 0, "ID del artículo")
			cmd.Flags().Int64("cantidad", 0, "cantidad en existencia")
			cmd.Flags().String("ubicacion", "", "ubicación")
			cmd.Flags().String("fecha", "", "fecha de ingreso AAAA-MM-DD")
			cmd.Flags().String("notas", "", "notas")
		},
		create: func(cmd *cobra.Command) (*dto.StockResponse, error) {
			articleID, _ := cmd.Flags().GetInt64("articulo")
			return app.Stock.Create(cmd.Context(), dto.CreateStockRequest{
				ArticleID:  articleID,
				Quantity:   changedInt(cmd, "cantidad"),
				Location:   stringFlag(cmd, "ubicacion"),
				IntakeDate: stringFlag(cmd, "fecha"),
				Notes:      stringFlag(cmd, "notas"),
			})
		},
		update: func(cmd *cobra.Command, id int64) (*dto.StockResponse, error) {
			return app.Stock.Update(cmd.Context(), id, dto.UpdateStockRequest{
				ArticleID:  changedInt(cmd, "articulo"),
				Quantity:   changedInt(cmd, "cantidad"),
				Location:   changedString(cmd, "ubicacion"),
				IntakeDate: changedString(cmd, "fecha"),
				Notes:      changedString(cmd, "notas"),
			})
		},
		list:   app.Stock.List,
		get:    app.Stock.GetByID,
		remove: app.Stock.Delete,
	}
}

func serialNumberTab(app *App) tab[dto.SerialNumberResponse] {
	return tab[dto.SerialNumberResponse]{
		use:     "series",
		short:   "Números de serie de fábrica",
		headers: []string{"ID", "NÚMERO DE SERIE", "ARTÍCULO", "PATRIMONIO", "OBSERVACIONES"},
		row: func(s dto.SerialNumberResponse) []string {
			return []string{idText(s.ID), s.Number, s.ArticleName, s.PatrimonyNumber, s.Notes}
		},
		flags: func(cmd *cobra.Command) {
			cmd.Flags().String("numero", "", "número de serie")
			cmd.Flags().Int64("articulo", 0, "ID del artículo (0 lo quita)")
			cmd.Flags().Int64("patrimonio", 0, "ID del número de patrimonio (0 lo quita)")
			cmd.Flags().String("observaciones", "", "observaciones")
		},
		create: func(cmd *cobra.Command) (*dto.SerialNumberResponse, error) {
			return app.SerialNumbers.Create(cmd.Context(), dto.CreateSerialNumberRequest{
				Number:      stringFlag(cmd, "numero"),
				ArticleID:   changedInt(cmd, "articulo"),
				PatrimonyID: changedInt(cmd, "patrimonio"),
				Notes:       stringFlag(cmd, "observaciones"),
			})
		},
		update: func(cmd *cobra.Command, id int64) (*dto.SerialNumberResponse, error) {
			return app.SerialNumbers.Update(cmd.Context(), id, dto.UpdateSerialNumberRequest{
				Number:      changedString(cmd, "numero"),
				ArticleID:   changedInt(cmd, "articulo"),
				PatrimonyID: changedInt(cmd, "patrimonio"),
				Notes:       changedString(cmd, "observaciones"),
			})
		},
		list:   app.SerialNumbers.List,
		get:    app.SerialNumbers.GetByID,
		remove: app.SerialNumbers.Delete,
	}
}
