package productcontroller

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"go.uber.org/zap"

	"github.com/junaidrashid-git/storefront-api/apperr"
	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/store"
	"github.com/junaidrashid-git/storefront-api/validation"
)

// POST /admin/products/import (multipart "file")
//
// Rows use the export layout. Every row is created as a new product; the ID and
// timestamp columns are ignored. Rows failing the product contract are skipped;
// the rest are created together or not at all.
func ImportProductsFromExcel(products *store.ProductRepo, v *validation.Validator, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header, err := c.FormFile("file")
		if err != nil {
			apperr.Respond(c, log, apperr.BadRequest("Excel file is required"))
			return
		}
		f, err := header.Open()
		if err != nil {
			apperr.Respond(c, log, apperr.Internal(err))
			return
		}
		defer f.Close()

		book, err := xlsx.OpenReaderAt(f, header.Size)
		if err != nil {
			apperr.Respond(c, log, apperr.BadRequest("Failed to parse Excel file"))
			return
		}
		if len(book.Sheets) == 0 || book.Sheets[0].MaxRow < 2 {
			apperr.Respond(c, log, apperr.BadRequest("Excel file is empty or missing header row"))
			return
		}

		inputs, problems := readProductRows(book.Sheets[0], v)
		batch := make([]*models.Product, 0, len(inputs))
		for _, in := range inputs {
			batch = append(batch, newProduct(in))
		}
		if err := products.CreateMany(c.Request.Context(), batch); err != nil {
			apperr.Respond(c, log, apperr.Internal(err))
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":       "Import completed",
			"created_count": len(batch),
			"skipped_count": len(problems),
			"skipped":       problems,
		})
	}
}

// readProductRows returns the valid rows and a message for each skipped one.
func readProductRows(sheet *xlsx.Sheet, v *validation.Validator) ([]validation.ProductInput, []string) {
	var (
		inputs   []validation.ProductInput
		problems []string
	)
	for i := 1; i < len(sheet.Rows); i++ {
		row := sheet.Rows[i]
		if row == nil || len(row.Cells) < 7 {
			problems = append(problems, fmt.Sprintf("row %d: missing columns", i+1))
			continue
		}
		get := func(index int) string {
			return strings.TrimSpace(row.Cells[index].String())
		}

		in := validation.ProductInput{
			Name:        get(1),
			Description: get(2),
			Image:       get(4),
			Category:    get(5),
		}
		if price, err := strconv.ParseFloat(get(3), 64); err == nil {
			in.Price = &price
		}
		if raw := get(6); raw != "" {
			stock, err := strconv.Atoi(raw)
			if err != nil {
				problems = append(problems, fmt.Sprintf("row %d: Stock must be a whole number", i+1))
				continue
			}
			in.Stock = &stock
		}

		if err := v.Check(&in); err != nil {
			problems = append(problems, fmt.Sprintf("row %d: %s", i+1, err.Error()))
			continue
		}
		inputs = append(inputs, in)
	}
	return inputs, problems
}
