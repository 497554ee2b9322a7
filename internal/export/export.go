// Package export renders order lists to XLSX workbooks.
package export

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/GlebRadaev/furniture-crm/internal/domain"
)

const (
	SheetName   = "Orders"
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	// #,##0.00
	moneyNumFmt = 4
)

var ErrUnknownColumn = errors.New("unknown export column")

type Column string

const (
	ColumnID          Column = "ID"
	ColumnClient      Column = "Client"
	ColumnPhone       Column = "Phone"
	ColumnAddress     Column = "Address"
	ColumnFurniture   Column = "Furniture"
	ColumnStatus      Column = "Status"
	ColumnResponsible Column = "Responsible"
	ColumnTotal       Column = "Total"
	ColumnPaid        Column = "Paid"
	ColumnRemaining   Column = "Remaining"
	ColumnCreated     Column = "Created"
	ColumnComment     Column = "Comment"
)

var Columns = []Column{
	ColumnID, ColumnClient, ColumnPhone, ColumnAddress, ColumnFurniture, ColumnStatus,
	ColumnResponsible, ColumnTotal, ColumnPaid, ColumnRemaining, ColumnCreated, ColumnComment,
}

var DefaultColumns = []Column{
	ColumnID, ColumnClient, ColumnStatus, ColumnResponsible, ColumnTotal, ColumnRemaining,
}

func (c Column) money() bool {
	return c == ColumnTotal || c == ColumnPaid || c == ColumnRemaining
}

func (c Column) width() float64 {
	switch c {
	case ColumnID:
		return 8
	case ColumnAddress, ColumnComment:
		return 40
	case ColumnClient, ColumnResponsible, ColumnFurniture:
		return 24
	default:
		return 16
	}
}

// ParseColumns reads a comma separated column list. Matching ignores case;
// an empty list selects DefaultColumns.
func ParseColumns(s string) ([]Column, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultColumns, nil
	}
	var columns []Column
	seen := make(map[Column]bool)
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		col, ok := lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
		}
		if seen[col] {
			continue
		}
		seen[col] = true
		columns = append(columns, col)
	}
	if len(columns) == 0 {
		return DefaultColumns, nil
	}
	return columns, nil
}

func lookup(name string) (Column, bool) {
	for _, c := range Columns {
		if strings.EqualFold(string(c), name) {
			return c, true
		}
	}
	return "", false
}

// WriteOrders writes one row per order under a bold header, followed by a
// totals row when a money column is selected.
func WriteOrders(w io.Writer, orders []domain.Order, columns []Column) error {
	if len(columns) == 0 {
		columns = DefaultColumns
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			zap.L().Error("can't close workbook", zap.Error(err))
		}
	}()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: moneyNumFmt})
	if err != nil {
		return fmt.Errorf("money style: %w", err)
	}
	totalStyle, err := f.NewStyle(&excelize.Style{NumFmt: moneyNumFmt, Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("total style: %w", err)
	}

	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(SheetName, cell, string(col)); err != nil {
			return err
		}
		if err := f.SetCellStyle(SheetName, cell, cell, headerStyle); err != nil {
			return err
		}
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(SheetName, name, name, col.width()); err != nil {
			return err
		}
	}

	sums := make(map[Column]decimal.Decimal)
	for r, order := range orders {
		row := r + 2
		for i, col := range columns {
			cell, err := excelize.CoordinatesToCellName(i+1, row)
			if err != nil {
				return err
			}
			value := cellValue(order, col)
			if err := f.SetCellValue(SheetName, cell, value); err != nil {
				return err
			}
			if col.money() {
				sums[col] = sums[col].Add(moneyValue(order, col))
				if err := f.SetCellStyle(SheetName, cell, cell, moneyStyle); err != nil {
					return err
				}
			}
		}
	}

	if hasMoney(columns) {
		row := len(orders) + 2
		for i, col := range columns {
			cell, err := excelize.CoordinatesToCellName(i+1, row)
			if err != nil {
				return err
			}
			switch {
			case i == 0 && !col.money():
				err = f.SetCellValue(SheetName, cell, "Total")
			case col.money():
				err = f.SetCellValue(SheetName, cell, sums[col].InexactFloat64())
			default:
				continue
			}
			if err != nil {
				return err
			}
			if err := f.SetCellStyle(SheetName, cell, cell, totalStyle); err != nil {
				return err
			}
		}
	}

	if err := f.Write(w); err != nil {
		zap.L().Error("can't write workbook", zap.Error(err))
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func hasMoney(columns []Column) bool {
	for _, c := range columns {
		if c.money() {
			return true
		}
	}
	return false
}

func moneyValue(o domain.Order, col Column) decimal.Decimal {
	switch col {
	case ColumnTotal:
		return o.TotalPrice
	case ColumnPaid:
		return o.PaidAmount
	default:
		return o.Remaining()
	}
}

func cellValue(o domain.Order, col Column) interface{} {
	switch col {
	case ColumnID:
		return o.ID
	case ColumnClient:
		return o.ClientName
	case ColumnPhone:
		return o.Phone
	case ColumnAddress:
		return o.Address
	case ColumnFurniture:
		return o.FurnitureType
	case ColumnStatus:
		return string(o.Status)
	case ColumnResponsible:
		return o.ResponsibleName
	case ColumnCreated:
		return o.CreatedAt.Format("2006-01-02 15:04")
	case ColumnComment:
		return o.Comment
	default:
		return moneyValue(o, col).InexactFloat64()
	}
}
