package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/lib/pq"
)

type Repository interface {
	GetConfiguratorProduct(ctx context.Context, slug string) (*Product, error)
	GetFileSpecs(ctx context.Context, slug string) (*FileSpecs, error)
	ListProducts(ctx context.Context) ([]ProductSummary, error)
}

// ProductSummary is the lightweight listing row.
type ProductSummary struct {
	ID   string `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetConfiguratorProduct(ctx context.Context, slug string) (*Product, error) {
	p := &Product{}

	var (
		dimensionsRaw []byte
		defaultsRaw   []byte
	)

	err := r.db.QueryRowContext(ctx, `
		SELECT id, slug, name, type,
		       pricing_type, base_price, sheet_width, sheet_height,
		       dimensions, defaults
		FROM products
		WHERE slug = $1
	`, slug).Scan(
		&p.ID, &p.Slug, &p.Name, &p.Type,
		&p.Pricing.Type, &p.Pricing.BasePrice, &p.Pricing.SheetWidth, &p.Pricing.SheetHeight,
		&dimensionsRaw, &defaultsRaw,
	)
	if err == sql.ErrNoRows {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	if len(dimensionsRaw) > 0 {
		p.Dimensions = &Dimensions{}
		if err := json.Unmarshal(dimensionsRaw, p.Dimensions); err != nil {
			return nil, fmt.Errorf("product %s: bad dimensions payload: %w", slug, err)
		}
	}
	if len(defaultsRaw) > 0 {
		if err := json.Unmarshal(defaultsRaw, &p.Defaults); err != nil {
			return nil, fmt.Errorf("product %s: bad defaults payload: %w", slug, err)
		}
	}

	if p.Options, err = r.loadOptions(ctx, p.ID); err != nil {
		return nil, err
	}
	if p.Materials, err = r.loadMaterials(ctx, p.ID); err != nil {
		return nil, err
	}
	if p.PrintMethods, err = r.loadPrintMethods(ctx, p.ID); err != nil {
		return nil, err
	}
	if p.Finishing, err = r.loadFinishing(ctx, p.ID); err != nil {
		return nil, err
	}
	if p.Pricing.PriceBreaks, err = r.loadPriceBreaks(ctx, p.ID); err != nil {
		return nil, err
	}
	if p.Upsells, err = r.loadUpsells(ctx, p.ID); err != nil {
		return nil, err
	}

	return p, nil
}

func (r *repository) loadOptions(ctx context.Context, productID string) ([]Option, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, type, required
		FROM product_options
		WHERE product_id = $1
		ORDER BY position, id
	`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var options []Option
	index := make(map[string]int)
	for rows.Next() {
		var o Option
		if err := rows.Scan(&o.ID, &o.Name, &o.Type, &o.Required); err != nil {
			return nil, err
		}
		index[o.ID] = len(options)
		options = append(options, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	valueRows, err := r.db.QueryContext(ctx, `
		SELECT v.option_id, v.id, v.label, v.price_modifier
		FROM option_values v
		JOIN product_options o ON o.id = v.option_id
		WHERE o.product_id = $1
		ORDER BY o.position, v.position, v.id
	`, productID)
	if err != nil {
		return nil, err
	}
	defer valueRows.Close()

	for valueRows.Next() {
		var (
			optionID string
			v        OptionValue
		)
		if err := valueRows.Scan(&optionID, &v.ID, &v.Label, &v.PriceModifier); err != nil {
			return nil, err
		}
		if i, ok := index[optionID]; ok {
			options[i].Values = append(options[i].Values, v)
		}
	}

	return options, valueRows.Err()
}

func (r *repository) loadMaterials(ctx context.Context, productID string) ([]Material, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT m.id, m.name, m.unit, m.cost_per_unit, m.price_modifier, m.constraints
		FROM materials m
		JOIN product_materials pm ON pm.material_id = m.id
		WHERE pm.product_id = $1
		ORDER BY pm.position, m.id
	`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var materials []Material
	for rows.Next() {
		var (
			m              Material
			constraintsRaw []byte
		)
		if err := rows.Scan(&m.ID, &m.Name, &m.Unit, &m.CostPerUnit, &m.PriceModifier, &constraintsRaw); err != nil {
			return nil, err
		}
		if len(constraintsRaw) > 0 {
			m.Constraints = &MaterialConstraints{}
			if err := json.Unmarshal(constraintsRaw, m.Constraints); err != nil {
				return nil, fmt.Errorf("material %s: bad constraints payload: %w", m.ID, err)
			}
		}
		materials = append(materials, m)
	}

	return materials, rows.Err()
}

func (r *repository) loadPrintMethods(ctx context.Context, productID string) ([]PrintMethod, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT pm.id, pm.name, pm.type, pm.cost_per_m2, pm.cost_per_sheet,
		       pm.max_width, pm.max_height, pm.material_ids
		FROM print_methods pm
		JOIN product_print_methods pp ON pp.print_method_id = pm.id
		WHERE pp.product_id = $1
		ORDER BY pp.position, pm.id
	`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var methods []PrintMethod
	for rows.Next() {
		var m PrintMethod
		if err := rows.Scan(
			&m.ID, &m.Name, &m.Type, &m.CostPerM2, &m.CostPerSheet,
			&m.MaxWidth, &m.MaxHeight, pq.Array(&m.MaterialIDs),
		); err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}

	return methods, rows.Err()
}

func (r *repository) loadFinishing(ctx context.Context, productID string) ([]FinishingOperation, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT f.id, f.name, f.cost_fix, f.cost_per_unit, f.cost_per_m2,
		       f.material_ids, f.print_method_ids
		FROM finishing_operations f
		JOIN product_finishing pf ON pf.finishing_id = f.id
		WHERE pf.product_id = $1
		ORDER BY pf.position, f.id
	`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var operations []FinishingOperation
	for rows.Next() {
		var f FinishingOperation
		if err := rows.Scan(
			&f.ID, &f.Name, &f.CostFix, &f.CostPerUnit, &f.CostPerM2,
			pq.Array(&f.MaterialIDs), pq.Array(&f.PrintMethodIDs),
		); err != nil {
			return nil, err
		}
		operations = append(operations, f)
	}

	return operations, rows.Err()
}

func (r *repository) loadPriceBreaks(ctx context.Context, productID string) ([]PriceBreak, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT min_quantity, max_quantity, price, discount
		FROM price_breaks
		WHERE product_id = $1
		ORDER BY min_quantity
	`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var breaks []PriceBreak
	for rows.Next() {
		var b PriceBreak
		if err := rows.Scan(&b.MinQuantity, &b.MaxQuantity, &b.Price, &b.Discount); err != nil {
			return nil, err
		}
		breaks = append(breaks, b)
	}

	return breaks, rows.Err()
}

func (r *repository) loadUpsells(ctx context.Context, productID string) ([]Upsell, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, price, quantity
		FROM upsells
		WHERE product_id = $1
		ORDER BY position, id
	`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var upsells []Upsell
	for rows.Next() {
		var u Upsell
		if err := rows.Scan(&u.ID, &u.Name, &u.Price, &u.Quantity); err != nil {
			return nil, err
		}
		upsells = append(upsells, u)
	}

	return upsells, rows.Err()
}

func (r *repository) GetFileSpecs(ctx context.Context, slug string) (*FileSpecs, error) {
	specs := &FileSpecs{}

	err := r.db.QueryRowContext(ctx, `
		SELECT min_file_width, min_file_height, bleed_required, aspect_tolerance
		FROM products
		WHERE slug = $1
	`, slug).Scan(&specs.MinWidth, &specs.MinHeight, &specs.BleedRequired, &specs.AspectTolerance)
	if err == sql.ErrNoRows {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	return specs, nil
}

func (r *repository) ListProducts(ctx context.Context) ([]ProductSummary, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, slug, name, type
		FROM products
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []ProductSummary
	for rows.Next() {
		var p ProductSummary
		if err := rows.Scan(&p.ID, &p.Slug, &p.Name, &p.Type); err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}
