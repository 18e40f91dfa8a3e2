package product

import (
	"database/sql"

	"github.com/ChethanSPY1817/Survey-Management-Assignment/model"
)

// Repository 产品数据访问接口
type Repository interface {
	GetAll() ([]model.Product, error)
	GetByID(id string) (*model.Product, error)
	// 按名称查重（不区分大小写）
	ExistsByName(name string) (bool, error)

	Create(p *model.Product) error
	Update(p *model.Product) error
	Delete(id string) error
}

type mysqlRepository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &mysqlRepository{db: db}
}

func (r *mysqlRepository) GetAll() ([]model.Product, error) {
	rows, err := r.db.Query(`SELECT id, name, description FROM products ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *mysqlRepository) GetByID(id string) (*model.Product, error) {
	var p model.Product
	err := r.db.QueryRow(`SELECT id, name, description FROM products WHERE id = ?`, id).
		Scan(&p.ID, &p.Name, &p.Description)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *mysqlRepository) ExistsByName(name string) (bool, error) {
	var cnt int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM products WHERE LOWER(name) = LOWER(?)`, name).Scan(&cnt); err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *mysqlRepository) Create(p *model.Product) error {
	_, err := r.db.Exec(`INSERT INTO products (id, name, description) VALUES (?, ?, ?)`,
		p.ID, p.Name, p.Description)
	return err
}

func (r *mysqlRepository) Update(p *model.Product) error {
	_, err := r.db.Exec(`UPDATE products SET name = ?, description = ? WHERE id = ?`,
		p.Name, p.Description, p.ID)
	return err
}

func (r *mysqlRepository) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM products WHERE id = ?`, id)
	return err
}
