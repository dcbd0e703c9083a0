package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/4utre/expense-tracker-app/internal/models"
)

// MemoryRepository is an in-memory Repository implementation used by tests.
// It mirrors the ordering and filtering semantics of the Postgres queries.
type MemoryRepository struct {
	mu        sync.Mutex
	users     map[string]models.User
	drivers   map[string]models.Driver
	expenses  map[string]models.Expense
	employees map[string]models.Employee
	types     map[string]models.ExpenseType
	settings  map[string]models.AppSetting // keyed by setting key
	templates map[string]models.PrintTemplate
}

// NewMemoryRepository creates an empty in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		users:     map[string]models.User{},
		drivers:   map[string]models.Driver{},
		expenses:  map[string]models.Expense{},
		employees: map[string]models.Employee{},
		types:     map[string]models.ExpenseType{},
		settings:  map[string]models.AppSetting{},
		templates: map[string]models.PrintTemplate{},
	}
}

func ensureID(id string) string {
	if id == "" {
		return uuid.New().String()
	}
	return id
}

func ensureDate(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t
}

// User operations

func (r *MemoryRepository) CreateUser(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.ID = ensureID(user.ID)
	user.CreatedDate = ensureDate(user.CreatedDate)
	user.UpdatedAt = time.Now().UTC()
	r.users[user.ID] = *user
	return nil
}

func (r *MemoryRepository) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (r *MemoryRepository) GetUserByID(_ context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (r *MemoryRepository) ListUsers(_ context.Context) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	users := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedDate.After(users[j].CreatedDate) })
	return users, nil
}

func (r *MemoryRepository) CountUsers(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}

func (r *MemoryRepository) UpdateUser(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.UpdatedAt = time.Now().UTC()
	r.users[user.ID] = *user
	return nil
}

func (r *MemoryRepository) DeleteUser(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

// Driver operations

func (r *MemoryRepository) CreateDriver(_ context.Context, driver *models.Driver) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	driver.ID = ensureID(driver.ID)
	driver.CreatedDate = ensureDate(driver.CreatedDate)
	r.drivers[driver.ID] = *driver
	return nil
}

func (r *MemoryRepository) GetDriver(_ context.Context, id string) (*models.Driver, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if d, ok := r.drivers[id]; ok {
		return &d, nil
	}
	return nil, nil
}

func (r *MemoryRepository) ListDrivers(_ context.Context) ([]models.Driver, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	drivers := make([]models.Driver, 0, len(r.drivers))
	for _, d := range r.drivers {
		drivers = append(drivers, d)
	}
	sort.Slice(drivers, func(i, j int) bool { return drivers[i].CreatedDate.After(drivers[j].CreatedDate) })
	return drivers, nil
}

func (r *MemoryRepository) UpdateDriver(_ context.Context, driver *models.Driver) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.drivers[driver.ID] = *driver
	return nil
}

func (r *MemoryRepository) DeleteDriver(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.drivers, id)
	for eid, e := range r.expenses {
		if e.DriverID == id {
			delete(r.expenses, eid)
		}
	}
	return nil
}

// Expense operations

func (r *MemoryRepository) CreateExpense(_ context.Context, expense *models.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	expense.ID = ensureID(expense.ID)
	expense.CreatedDate = ensureDate(expense.CreatedDate)
	r.expenses[expense.ID] = *expense
	return nil
}

func (r *MemoryRepository) GetExpense(_ context.Context, id string) (*models.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.expenses[id]; ok {
		return &e, nil
	}
	return nil, nil
}

func matchesFilter(e models.Expense, filter ExpenseFilter) bool {
	if filter.From != nil && e.ExpenseDate.Before(*filter.From) {
		return false
	}
	if filter.To != nil && e.ExpenseDate.After(*filter.To) {
		return false
	}
	if filter.DriverID != "" && e.DriverID != filter.DriverID {
		return false
	}
	if filter.ExpenseType != "" && e.ExpenseType != filter.ExpenseType {
		return false
	}
	if filter.Currency != "" && e.Currency != filter.Currency {
		return false
	}
	if filter.IsPaid != nil && e.IsPaid != *filter.IsPaid {
		return false
	}
	if filter.IsDeleted != nil && e.IsDeleted != *filter.IsDeleted {
		return false
	}
	if filter.Search != "" {
		s := strings.ToLower(filter.Search)
		if !strings.Contains(strings.ToLower(e.DriverName), s) &&
			!strings.Contains(strings.ToLower(e.DriverNumber), s) &&
			!strings.Contains(strings.ToLower(e.Description), s) {
			return false
		}
	}
	return true
}

func (r *MemoryRepository) ListExpenses(_ context.Context, filter ExpenseFilter) ([]models.Expense, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	matched := []models.Expense{}
	for _, e := range r.expenses {
		if matchesFilter(e, filter) {
			matched = append(matched, e)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ExpenseDate.After(matched[j].ExpenseDate) })

	total := int64(len(matched))
	if filter.Limit > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		start := (page - 1) * filter.Limit
		if start > len(matched) {
			start = len(matched)
		}
		end := start + filter.Limit
		if end > len(matched) {
			end = len(matched)
		}
		matched = matched[start:end]
	}

	return matched, total, nil
}

func (r *MemoryRepository) ListDriverHourlyExpenses(_ context.Context, driverID string) ([]models.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	expenses := []models.Expense{}
	for _, e := range r.expenses {
		if e.DriverID == driverID && e.Hours.Valid {
			expenses = append(expenses, e)
		}
	}
	sort.Slice(expenses, func(i, j int) bool { return expenses[i].ID < expenses[j].ID })
	return expenses, nil
}

func (r *MemoryRepository) UpdateExpense(_ context.Context, expense *models.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.expenses[expense.ID] = *expense
	return nil
}

func (r *MemoryRepository) UpdateExpenseAmount(_ context.Context, id string, amount decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.expenses[id]; ok {
		e.Amount = amount
		r.expenses[id] = e
	}
	return nil
}

func (r *MemoryRepository) DeleteExpense(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.expenses, id)
	return nil
}

func (r *MemoryRepository) SetExpensesDeleted(_ context.Context, ids []string, deleted bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range ids {
		if e, ok := r.expenses[id]; ok {
			e.IsDeleted = deleted
			r.expenses[id] = e
		}
	}
	return nil
}

func (r *MemoryRepository) DeleteExpenses(_ context.Context, ids []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range ids {
		delete(r.expenses, id)
	}
	return nil
}

// Employee operations

func (r *MemoryRepository) CreateEmployee(_ context.Context, employee *models.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	employee.ID = ensureID(employee.ID)
	employee.CreatedDate = ensureDate(employee.CreatedDate)
	r.employees[employee.ID] = *employee
	return nil
}

func (r *MemoryRepository) GetEmployee(_ context.Context, id string) (*models.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.employees[id]; ok {
		return &e, nil
	}
	return nil, nil
}

func (r *MemoryRepository) ListEmployees(_ context.Context) ([]models.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	employees := make([]models.Employee, 0, len(r.employees))
	for _, e := range r.employees {
		employees = append(employees, e)
	}
	sort.Slice(employees, func(i, j int) bool { return employees[i].CreatedDate.After(employees[j].CreatedDate) })
	return employees, nil
}

func (r *MemoryRepository) UpdateEmployee(_ context.Context, employee *models.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.employees[employee.ID] = *employee
	return nil
}

func (r *MemoryRepository) DeleteEmployee(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.employees, id)
	return nil
}

// Expense type operations

func (r *MemoryRepository) CreateExpenseType(_ context.Context, et *models.ExpenseType) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	et.ID = ensureID(et.ID)
	et.CreatedDate = ensureDate(et.CreatedDate)
	r.types[et.ID] = *et
	return nil
}

func (r *MemoryRepository) GetExpenseType(_ context.Context, id string) (*models.ExpenseType, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if et, ok := r.types[id]; ok {
		return &et, nil
	}
	return nil, nil
}

func (r *MemoryRepository) ListExpenseTypes(_ context.Context) ([]models.ExpenseType, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	types := make([]models.ExpenseType, 0, len(r.types))
	for _, et := range r.types {
		types = append(types, et)
	}
	sort.Slice(types, func(i, j int) bool { return types[i].CreatedDate.After(types[j].CreatedDate) })
	return types, nil
}

func (r *MemoryRepository) UpdateExpenseType(_ context.Context, et *models.ExpenseType) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types[et.ID] = *et
	return nil
}

func (r *MemoryRepository) DeleteExpenseType(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.types, id)
	return nil
}

// App setting operations

func (r *MemoryRepository) ListSettings(_ context.Context) ([]models.AppSetting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	settings := make([]models.AppSetting, 0, len(r.settings))
	for _, s := range r.settings {
		settings = append(settings, s)
	}
	sort.Slice(settings, func(i, j int) bool { return settings[i].SettingKey < settings[j].SettingKey })
	return settings, nil
}

func (r *MemoryRepository) GetSettingByKey(_ context.Context, key string) (*models.AppSetting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.settings[key]; ok {
		return &s, nil
	}
	return nil, nil
}

func (r *MemoryRepository) UpsertSetting(_ context.Context, setting *models.AppSetting) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.settings[setting.SettingKey]; ok {
		existing.SettingValue = setting.SettingValue
		existing.SettingCategory = setting.SettingCategory
		existing.Description = setting.Description
		r.settings[setting.SettingKey] = existing
		*setting = existing
		return nil
	}
	setting.ID = ensureID(setting.ID)
	setting.CreatedDate = ensureDate(setting.CreatedDate)
	r.settings[setting.SettingKey] = *setting
	return nil
}

func (r *MemoryRepository) DeleteSettingByKey(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.settings, key)
	return nil
}

// Print template operations

func (r *MemoryRepository) CreateTemplate(_ context.Context, tpl *models.PrintTemplate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	tpl.ID = ensureID(tpl.ID)
	tpl.CreatedDate = ensureDate(tpl.CreatedDate)
	r.templates[tpl.ID] = *tpl
	return nil
}

func (r *MemoryRepository) GetTemplate(_ context.Context, id string) (*models.PrintTemplate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if tpl, ok := r.templates[id]; ok {
		return &tpl, nil
	}
	return nil, nil
}

func (r *MemoryRepository) ListTemplates(_ context.Context) ([]models.PrintTemplate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	templates := make([]models.PrintTemplate, 0, len(r.templates))
	for _, tpl := range r.templates {
		templates = append(templates, tpl)
	}
	sort.Slice(templates, func(i, j int) bool { return templates[i].CreatedDate.After(templates[j].CreatedDate) })
	return templates, nil
}

func (r *MemoryRepository) UpdateTemplate(_ context.Context, tpl *models.PrintTemplate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.templates[tpl.ID] = *tpl
	return nil
}

func (r *MemoryRepository) DeleteTemplate(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.templates, id)
	return nil
}

func (r *MemoryRepository) ClearDefaultTemplates(_ context.Context, templateType string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, tpl := range r.templates {
		if tpl.TemplateType == templateType && tpl.IsDefault {
			tpl.IsDefault = false
			r.templates[id] = tpl
		}
	}
	return nil
}
