package services

import (
	"context"
	"sort"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
	"github.com/yigit/unirecords/internal/app/models"
	"github.com/yigit/unirecords/internal/app/repositories"
	"github.com/yigit/unirecords/internal/db"
	"github.com/yigit/unirecords/internal/pkg/apperrors"
	"github.com/yigit/unirecords/internal/pkg/metrics"
)

// txParticipant is a fake store whose state the fake transactor can roll back
type txParticipant interface {
	snapshot() (restore func())
}

type fakeTransactor struct {
	participants []txParticipant
	began        int
	committed    int
	rolledBack   int
}

func (f *fakeTransactor) WithTransaction(ctx context.Context, fn db.TransactionFn) error {
	f.began++
	restores := make([]func(), 0, len(f.participants))
	for _, p := range f.participants {
		restores = append(restores, p.snapshot())
	}
	if err := fn(ctx, nil); err != nil {
		for _, restore := range restores {
			restore()
		}
		f.rolledBack++
		return err
	}
	f.committed++
	return nil
}

type fakeRegistrationRepo struct {
	rows      []models.RegisteredUnit
	locks     []string
	insertErr error
	countErr  error
}

var _ repositories.IRegistrationRepository = (*fakeRegistrationRepo)(nil)

func (f *fakeRegistrationRepo) snapshot() func() {
	saved := append([]models.RegisteredUnit(nil), f.rows...)
	return func() { f.rows = saved }
}

func (f *fakeRegistrationRepo) WithTx(pgx.Tx) repositories.IRegistrationRepository { return f }

func (f *fakeRegistrationRepo) LockSemester(_ context.Context, studentID, semester string) error {
	f.locks = append(f.locks, studentID+"/"+semester)
	return nil
}

func (f *fakeRegistrationRepo) CountRegistered(_ context.Context, studentID, semester string) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	n := 0
	for _, r := range f.rows {
		if r.StudentID == studentID && r.Semester == semester {
			n++
		}
	}
	return n, nil
}

func (f *fakeRegistrationRepo) IsRegistered(_ context.Context, studentID, unitCode, semester string) (bool, error) {
	for _, r := range f.rows {
		if r.StudentID == studentID && r.UnitCode == unitCode && r.Semester == semester {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRegistrationRepo) Insert(_ context.Context, reg *models.RegisteredUnit) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	reg.ID = int64(len(f.rows) + 1)
	f.rows = append(f.rows, *reg)
	return nil
}

func (f *fakeRegistrationRepo) RegisteredUnitCodes(_ context.Context, studentID string) (map[string]bool, error) {
	codes := make(map[string]bool)
	for _, r := range f.rows {
		if r.StudentID == studentID {
			codes[r.UnitCode] = true
		}
	}
	return codes, nil
}

func (f *fakeRegistrationRepo) seed(studentID, semester string, codes ...string) {
	for _, c := range codes {
		f.rows = append(f.rows, models.RegisteredUnit{StudentID: studentID, UnitCode: c, Semester: semester})
	}
}

type fakeStudentRepo struct {
	students map[string]*models.Student
	created  []*models.Student
	err      error
}

var _ repositories.IStudentRepository = (*fakeStudentRepo)(nil)

func newFakeStudentRepo(students ...*models.Student) *fakeStudentRepo {
	f := &fakeStudentRepo{students: make(map[string]*models.Student)}
	for i, s := range students {
		if s.ID == 0 {
			s.ID = int64(i + 1)
		}
		f.students[s.StudentID] = s
	}
	return f
}

func (f *fakeStudentRepo) GetByStudentID(_ context.Context, studentID string) (*models.Student, error) {
	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.students[studentID]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return s, nil
}

func (f *fakeStudentRepo) ExistsByStudentID(_ context.Context, studentID string) (bool, error) {
	_, ok := f.students[studentID]
	return ok, f.err
}

func (f *fakeStudentRepo) GetCredential(ctx context.Context, studentID string) (*models.Credential, error) {
	s, err := f.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return &models.Credential{ID: s.ID, Identifier: s.StudentID, PasswordHash: s.Password, UserType: models.UserTypeStudent}, nil
}

func (f *fakeStudentRepo) Create(_ context.Context, student *models.Student) error {
	if _, ok := f.students[student.StudentID]; ok {
		return apperrors.ErrStudentIDAlreadyExists
	}
	student.ID = int64(len(f.students) + 1)
	f.students[student.StudentID] = student
	f.created = append(f.created, student)
	return nil
}

type fakeAdminRepo struct {
	admins map[string]*models.Credential
}

func (f *fakeAdminRepo) GetCredential(_ context.Context, username string) (*models.Credential, error) {
	c, ok := f.admins[username]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	return c, nil
}

type fakeProgramRepo struct {
	programs map[int64]*models.Program
	nextID   int64
}

func (f *fakeProgramRepo) Create(_ context.Context, p *models.Program) error {
	if f.programs == nil {
		f.programs = make(map[int64]*models.Program)
	}
	f.nextID++
	p.ID = f.nextID
	f.programs[p.ID] = p
	return nil
}

func (f *fakeProgramRepo) GetByID(_ context.Context, id int64) (*models.Program, error) {
	p, ok := f.programs[id]
	if !ok {
		return nil, apperrors.ErrProgramNotFound
	}
	return p, nil
}

type fakeUnitRepo struct {
	programs map[int64]string
	units    []models.Unit
}

var _ repositories.IUnitRepository = (*fakeUnitRepo)(nil)

func (f *fakeUnitRepo) snapshot() func() {
	saved := append([]models.Unit(nil), f.units...)
	return func() { f.units = saved }
}

func (f *fakeUnitRepo) WithTx(pgx.Tx) repositories.IUnitRepository { return f }

func (f *fakeUnitRepo) CreateForProgram(_ context.Context, unit *models.Unit, programID int64) error {
	title, ok := f.programs[programID]
	if !ok {
		return apperrors.ErrProgramNotFound
	}
	unit.ID = int64(len(f.units) + 1)
	unit.ProgramTitle = title
	f.units = append(f.units, *unit)
	return nil
}

func (f *fakeUnitRepo) ListByProgram(_ context.Context, programTitle string) ([]models.Unit, error) {
	var out []models.Unit
	for _, u := range f.units {
		if u.ProgramTitle == programTitle {
			out = append(out, u)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].YearOffered != out[j].YearOffered {
			return out[i].YearOffered < out[j].YearOffered
		}
		if out[i].SemesterOffered != out[j].SemesterOffered {
			return out[i].SemesterOffered < out[j].SemesterOffered
		}
		return out[i].UnitCode < out[j].UnitCode
	})
	return out, nil
}

func (f *fakeUnitRepo) ListAvailable(_ context.Context, programTitle string, yearOffered int, semester string) ([]models.Unit, error) {
	var out []models.Unit
	for _, u := range f.units {
		if u.ProgramTitle == programTitle && u.YearOffered == yearOffered && u.SemesterOffered == semester {
			out = append(out, u)
		}
	}
	return out, nil
}

type fakePrerequisiteRepo struct {
	rows      []models.Prerequisite
	createErr error
}

var _ repositories.IPrerequisiteRepository = (*fakePrerequisiteRepo)(nil)

func (f *fakePrerequisiteRepo) snapshot() func() {
	saved := append([]models.Prerequisite(nil), f.rows...)
	return func() { f.rows = saved }
}

func (f *fakePrerequisiteRepo) WithTx(pgx.Tx) repositories.IPrerequisiteRepository { return f }

func (f *fakePrerequisiteRepo) Create(_ context.Context, p models.Prerequisite) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.rows = append(f.rows, p)
	return nil
}

func (f *fakePrerequisiteRepo) PrerequisiteCodes(context.Context) (map[string]bool, error) {
	codes := make(map[string]bool)
	for _, p := range f.rows {
		codes[p.PrerequisiteCode] = true
	}
	return codes, nil
}

func (f *fakePrerequisiteRepo) ListForUnits(_ context.Context, unitCodes []string) (map[string][]string, error) {
	want := make(map[string]bool)
	for _, c := range unitCodes {
		want[c] = true
	}
	out := make(map[string][]string)
	for _, p := range f.rows {
		if want[p.UnitCode] {
			out[p.UnitCode] = append(out[p.UnitCode], p.PrerequisiteCode)
		}
	}
	return out, nil
}

type fakeGradeRepo struct {
	grades  []models.Grade
	titles  map[int64]string
	codes   map[int64]string
	listErr error
}

func (f *fakeGradeRepo) Upsert(_ context.Context, g *models.Grade) (bool, error) {
	if _, ok := f.titles[g.UnitID]; !ok {
		return false, apperrors.ErrUnitNotFound
	}
	for i := range f.grades {
		if f.grades[i].StudentID == g.StudentID && f.grades[i].UnitID == g.UnitID {
			f.grades[i] = *g
			return false, nil
		}
	}
	f.grades = append(f.grades, *g)
	return true, nil
}

func (f *fakeGradeRepo) ListByStudent(_ context.Context, studentID string) ([]models.GradeRecord, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.GradeRecord
	for _, g := range f.grades {
		if g.StudentID == studentID {
			out = append(out, models.GradeRecord{UnitName: f.titles[g.UnitID], Grade: g.Grade, Semester: g.Semester, Year: g.Year})
		}
	}
	return out, nil
}

func (f *fakeGradeRepo) ListUnitGrades(_ context.Context, studentID string) ([]models.UnitGrade, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.UnitGrade
	for _, g := range f.grades {
		if g.StudentID == studentID {
			out = append(out, models.UnitGrade{UnitCode: f.codes[g.UnitID], Title: f.titles[g.UnitID], Grade: g.Grade})
		}
	}
	return out, nil
}

type fakeInvoiceRepo struct {
	invoices map[string]*models.Invoice
	students map[string]bool
}

func (f *fakeInvoiceRepo) Upsert(_ context.Context, inv *models.Invoice) (bool, error) {
	if !f.students[inv.StudentID] {
		return false, apperrors.ErrStudentNotFound
	}
	if f.invoices == nil {
		f.invoices = make(map[string]*models.Invoice)
	}
	_, existed := f.invoices[inv.StudentID]
	copied := *inv
	f.invoices[inv.StudentID] = &copied
	return !existed, nil
}

func (f *fakeInvoiceRepo) GetByStudentID(_ context.Context, studentID string) (*models.Invoice, error) {
	return f.invoices[studentID], nil
}

type fakeHistoryRepo struct {
	entries map[string][]models.HistoryEntry
}

func (f *fakeHistoryRepo) ListByStudent(_ context.Context, studentID string) ([]models.HistoryEntry, error) {
	return f.entries[studentID], nil
}

// counterValue reads one labelled counter sample from the metrics registry
func counterValue(t *testing.T, m *metrics.Metrics, name, label, value string) float64 {
	t.Helper()
	families, err := m.Registry.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, metric := range mf.GetMetric() {
			for _, lp := range metric.GetLabel() {
				if lp.GetName() == label && strings.EqualFold(lp.GetValue(), value) {
					return metric.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}
