package productcontroller

import (
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"go.uber.org/zap"

	"github.com/junaidrashid-git/storefront-api/apperr"
	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/store"
)

const timeLayout = "2006-01-02 15:04:05"

// Column layout shared by export and import.
var sheetHeaders = []string{
	"ID", "Name", "Description", "Price", "Image", "Category", "Stock", "CreatedAt", "UpdatedAt",
}

// GET /admin/products/export
func ExportProductsToExcel(products *store.ProductRepo, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := products.List(c.Request.Context(), store.ProductFilter{})
		if err != nil {
			apperr.Respond(c, log, apperr.Internal(err))
			return
		}

		file, err := productsWorkbook(list)
		if err != nil {
			apperr.Respond(c, log, apperr.Internal(err))
			return
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			log.Error("write products workbook", zap.Error(err))
		}
	}
}

func productsWorkbook(products []models.Product) (*xlsx.File, error) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Products")
	if err != nil {
		return nil, err
	}

	headerRow := sheet.AddRow()
	for _, h := range sheetHeaders {
		headerRow.AddCell().SetString(h)
	}

	for _, p := range products {
		row := sheet.AddRow()
		row.AddCell().SetString(p.ID)
		row.AddCell().SetString(p.Name)
		row.AddCell().SetString(p.Description)
		row.AddCell().SetFloat(p.Price.InexactFloat64())
		row.AddCell().SetString(p.Image)
		row.AddCell().SetString(p.Category)
		row.AddCell().SetInt(p.Stock)
		row.AddCell().SetString(p.CreatedAt.UTC().Format(timeLayout))
		row.AddCell().SetString(p.UpdatedAt.UTC().Format(timeLayout))
	}
	return file, nil
}
