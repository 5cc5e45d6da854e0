package billing_test

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/wattwerk/wattwerk-api/internal/domain/entity"
	"github.com/wattwerk/wattwerk-api/internal/domain/repository"
)

// ─────────────────────────────────────────────
// In-memory repository fakes
// ─────────────────────────────────────────────

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type fakeProjectRepo struct {
	projects map[string]*entity.Project
}

func newFakeProjectRepo(projects ...*entity.Project) *fakeProjectRepo {
	r := &fakeProjectRepo{projects: map[string]*entity.Project{}}
	for _, p := range projects {
		r.projects[p.ID] = p
	}
	return r
}

func (r *fakeProjectRepo) Create(p *entity.Project) error { r.projects[p.ID] = p; return nil }
func (r *fakeProjectRepo) Update(p *entity.Project) error { r.projects[p.ID] = p; return nil }
func (r *fakeProjectRepo) GetByID(id string) (*entity.Project, error) {
	return r.projects[id], nil
}
func (r *fakeProjectRepo) ListByCompany(companyID string) ([]*entity.Project, error) {
	var out []*entity.Project
	for _, p := range r.projects {
		if p.CompanyID == companyID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeMaterialRepo struct {
	entries []*entity.MaterialEntry
}

func (r *fakeMaterialRepo) Create(e *entity.MaterialEntry) error { r.entries = append(r.entries, e); return nil }
func (r *fakeMaterialRepo) Update(*entity.MaterialEntry) error   { return nil }
func (r *fakeMaterialRepo) Delete(string) error                  { return nil }
func (r *fakeMaterialRepo) GetByID(id string) (*entity.MaterialEntry, error) {
	for _, e := range r.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}
func (r *fakeMaterialRepo) ListByProject(projectID string) ([]*entity.MaterialEntry, error) {
	var out []*entity.MaterialEntry
	for _, e := range r.entries {
		if e.ProjectID == projectID {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeCatalogLineRepo struct {
	lines []*entity.CatalogLine
}

func (r *fakeCatalogLineRepo) Create(l *entity.CatalogLine) error { r.lines = append(r.lines, l); return nil }
func (r *fakeCatalogLineRepo) Delete(string) error                { return nil }
func (r *fakeCatalogLineRepo) ListByProject(projectID string) ([]*entity.CatalogLine, error) {
	var out []*entity.CatalogLine
	for _, l := range r.lines {
		if l.ProjectID == projectID {
			out = append(out, l)
		}
	}
	return out, nil
}

type fakeTimeRepo struct {
	entries []*entity.TimeEntry
}

func (r *fakeTimeRepo) Create(e *entity.TimeEntry) error { r.entries = append(r.entries, e); return nil }
func (r *fakeTimeRepo) Update(*entity.TimeEntry) error   { return nil }
func (r *fakeTimeRepo) Delete(string) error              { return nil }
func (r *fakeTimeRepo) GetByID(id string) (*entity.TimeEntry, error) {
	for _, e := range r.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}
func (r *fakeTimeRepo) ListByProject(projectID string) ([]*entity.TimeEntry, error) {
	var out []*entity.TimeEntry
	for _, e := range r.entries {
		if e.ProjectID == projectID {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeEmployeeRepo struct {
	employees map[string]*entity.Employee
}

func newFakeEmployeeRepo(employees ...*entity.Employee) *fakeEmployeeRepo {
	r := &fakeEmployeeRepo{employees: map[string]*entity.Employee{}}
	for _, e := range employees {
		r.employees[e.ID] = e
	}
	return r
}

func (r *fakeEmployeeRepo) Create(e *entity.Employee) error { r.employees[e.ID] = e; return nil }
func (r *fakeEmployeeRepo) Update(e *entity.Employee) error { r.employees[e.ID] = e; return nil }
func (r *fakeEmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	return r.employees[id], nil
}
func (r *fakeEmployeeRepo) ListByCompany(string) ([]*entity.Employee, error) { return nil, nil }

type fakeInvoiceRepo struct {
	invoices map[string]*entity.Invoice
	items    map[string][]*entity.InvoiceItem
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{
		invoices: map[string]*entity.Invoice{},
		items:    map[string][]*entity.InvoiceItem{},
	}
}

func (r *fakeInvoiceRepo) Create(inv *entity.Invoice) error {
	clone := *inv
	r.invoices[inv.ID] = &clone
	return nil
}

func (r *fakeInvoiceRepo) Update(inv *entity.Invoice) error {
	clone := *inv
	r.invoices[inv.ID] = &clone
	return nil
}

func (r *fakeInvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	inv, ok := r.invoices[id]
	if !ok {
		return nil, nil
	}
	clone := *inv
	return &clone, nil
}

func (r *fakeInvoiceRepo) ListByCompany(companyID string) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, inv := range r.invoices {
		if inv.CompanyID == companyID {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (r *fakeInvoiceRepo) ListByProject(projectID string) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, inv := range r.invoices {
		if inv.ProjectID == projectID {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (r *fakeInvoiceRepo) CreateItem(item *entity.InvoiceItem) error {
	r.items[item.InvoiceID] = append(r.items[item.InvoiceID], item)
	return nil
}

func (r *fakeInvoiceRepo) ReplaceItems(invoiceID string, items []*entity.InvoiceItem) error {
	r.items[invoiceID] = append([]*entity.InvoiceItem(nil), items...)
	return nil
}

func (r *fakeInvoiceRepo) GetItemsByInvoiceID(invoiceID string) ([]*entity.InvoiceItem, error) {
	return r.items[invoiceID], nil
}

// fakeTxRunner hands the callback the same repo; there is no transaction to
// roll back, which is fine for exercising the issue path.
type fakeTxRunner struct {
	repo repository.InvoiceRepository
}

func (r *fakeTxRunner) RunInvoice(_ context.Context, fn func(repository.InvoiceRepository) error) error {
	return fn(r.repo)
}
