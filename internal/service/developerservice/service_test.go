package developerservice_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"godevs/internal/domain"
	apperror "godevs/internal/errors"
	"godevs/internal/pkg/logger"
	"godevs/internal/service/developerservice"
	"godevs/internal/validation"
)

// MockDeveloperRepository é uma implementação mock da interface DeveloperRepository
type MockDeveloperRepository struct {
	mock.Mock
}

func (m *MockDeveloperRepository) FindAll(ctx context.Context) ([]domain.Developer, error) {
	args := m.Called(ctx)
	devs, _ := args.Get(0).([]domain.Developer)
	return devs, args.Error(1)
}

func (m *MockDeveloperRepository) FindByID(ctx context.Context, id int64) (domain.Developer, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Developer), args.Error(1)
}

func (m *MockDeveloperRepository) FindOneWhere(ctx context.Context, field domain.DeveloperField, value string) (domain.Developer, error) {
	args := m.Called(ctx, field, value)
	return args.Get(0).(domain.Developer), args.Error(1)
}

func (m *MockDeveloperRepository) FindAllWhere(ctx context.Context, field domain.DeveloperField, value string) ([]domain.Developer, error) {
	args := m.Called(ctx, field, value)
	devs, _ := args.Get(0).([]domain.Developer)
	return devs, args.Error(1)
}

func (m *MockDeveloperRepository) FindAllLike(ctx context.Context, field domain.DeveloperField, value string) ([]domain.Developer, error) {
	args := m.Called(ctx, field, value)
	devs, _ := args.Get(0).([]domain.Developer)
	return devs, args.Error(1)
}

func (m *MockDeveloperRepository) Create(ctx context.Context, dev domain.Developer) (domain.Developer, error) {
	args := m.Called(ctx, dev)
	return args.Get(0).(domain.Developer), args.Error(1)
}

func (m *MockDeveloperRepository) Update(ctx context.Context, existing domain.Developer, patch domain.Developer) (domain.Developer, error) {
	args := m.Called(ctx, existing, patch)
	return args.Get(0).(domain.Developer), args.Error(1)
}

func (m *MockDeveloperRepository) Delete(ctx context.Context, existing domain.Developer) error {
	args := m.Called(ctx, existing)
	return args.Error(0)
}

// MockAddressLookup é uma implementação mock da interface AddressLookup
type MockAddressLookup struct {
	mock.Mock
}

func (m *MockAddressLookup) Lookup(ctx context.Context, cep string) (domain.Address, error) {
	args := m.Called(ctx, cep)
	return args.Get(0).(domain.Address), args.Error(1)
}

var lookupAddress = domain.Address{
	Street:       "Praça da Sé",
	Neighborhood: "Sé",
	City:         "São Paulo",
	State:        "SP",
}

func newTestService(repo *MockDeveloperRepository, lookup *MockAddressLookup, opts developerservice.Options) *developerservice.Service {
	return developerservice.NewService(repo, lookup, validation.NewDeveloperValidator(), opts, logger.NewNopLogger())
}

func validInput() domain.DeveloperInput {
	return domain.DeveloperInput{
		FullName:    "Ada Lovelace",
		Cellphone:   "11987654321",
		Specialties: []string{"JavaScript", "Python"},
		Cep:         "01001000",
	}
}

// --- Testes para ListDevelopers ---

func TestListDevelopers_Success(t *testing.T) {
	mockRepo := new(MockDeveloperRepository)
	svc := newTestService(mockRepo, new(MockAddressLookup), developerservice.Options{})

	expected := []domain.Developer{{ID: 1, FullName: "Ada"}, {ID: 2, FullName: "Grace"}}
	mockRepo.On("FindAll", mock.Anything).Return(expected, nil)

	result, err := svc.ListDevelopers(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, expected, result)
	mockRepo.AssertExpectations(t)
}

func TestListDevelopers_Fail_EmptyTableIsNotFound(t *testing.T) {
	mockRepo := new(MockDeveloperRepository)
	svc := newTestService(mockRepo, new(MockAddressLookup), developerservice.Options{})

	mockRepo.On("FindAll", mock.Anything).Return([]domain.Developer{}, nil)

	result, err := svc.ListDevelopers(context.Background())

	assert.Nil(t, result)
	assert.IsType(t, &apperror.NotFoundError{}, err)
	mockRepo.AssertExpectations(t)
}

func TestListDevelopers_Fail_NilResultIsNotFound(t *testing.T) {
	mockRepo := new(MockDeveloperRepository)
	svc := newTestService(mockRepo, new(MockAddressLookup), developerservice.Options{})

	mockRepo.On("FindAll", mock.Anything).Return(nil, nil)

	_, err := svc.ListDevelopers(context.Background())

	assert.IsType(t, &apperror.NotFoundError{}, err)
}

func TestListDevelopers_Fail_RepoError(t *testing.T) {
	mockRepo := new(MockDeveloperRepository)
	svc := newTestService(mockRepo, new(MockAddressLookup), developerservice.Options{})

	mockRepo.On("FindAll", mock.Anything).Return(nil, errors.New("connection refused"))

	_, err := svc.ListDevelopers(context.Background())

	assert.IsType(t, &apperror.InternalError{}, err)
	assert.Contains(t, err.Error(), "connection refused")
}

// --- Testes para CreateDeveloper ---

func TestCreateDeveloper_Success(t *testing.T) {
	mockRepo := new(MockDeveloperRepository)
	mockLookup := new(MockAddressLookup)
	svc := newTestService(mockRepo, mockLookup, developerservice.Options{})

	in := validInput()
	expectedRow := domain.Developer{
		FullName:     "Ada Lovelace",
		Cellphone:    "11987654321",
		Specialties:  "JavaScript, Python",
		Cep:          "01001000",
		Street:       lookupAddress.Street,
		Neighborhood: lookupAddress.Neighborhood,
		City:         lookupAddress.City,
		State:        lookupAddress.State,
	}
	stored := expectedRow
	stored.ID = 7

	mockLookup.On("Lookup", mock.Anything, "01001000").Return(lookupAddress, nil)
	mockRepo.On("Create", mock.Anything, expectedRow).Return(stored, nil)

	result, err := svc.CreateDeveloper(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, int64(7), result.ID)
	assert.Equal(t, "JavaScript, Python", result.Specialties)
	assert.Equal(t, lookupAddress.Street, result.Street)
	assert.Equal(t, lookupAddress.Neighborhood, result.Neighborhood)
	assert.Equal(t, lookupAddress.City, result.City)
	assert.Equal(t, lookupAddress.State, result.State)
	mockLookup.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestCreateDeveloper_Success_PhoneIsOptional(t *testing.T) {
	mockRepo := new(MockDeveloperRepository)
	mockLookup := new(MockAddressLookup)
	svc := newTestService(mockRepo, mockLookup, developerservice.Options{})

	phone := "1133334444"
	in := validInput()
	in.Phone = &phone

	mockLookup.On("Lookup", mock.Anything, in.Cep).Return(lookupAddress, nil)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(d domain.Developer) bool {
		return d.Phone != nil && *d.Phone == phone
	})).Return(domain.Developer{ID: 1, Phone: &phone}, nil)

	result, err := svc.CreateDeveloper(context.Background(), in)

	require.NoError(t, err)
	require.NotNil(t, result.Phone)
	assert.Equal(t, phone, *result.Phone)
	mockRepo.AssertExpectations(t)
}

func TestCreateDeveloper_Fail_SingleSpecialtyIsServerError(t *testing.T) {
	mockRepo := new(MockDeveloperRepository)
	mockLookup := new(MockAddressLookup)
	svc := newTestService(mockRepo, mockLookup, developerservice.Options{})

	in := validInput()
	in.Specialties = []string{"Go"}

	_, err := svc.CreateDeveloper(context.Background(), in)

	require.Error(t, err)
	assert.IsType(t, &apperror.InternalError{}, err)
	status, _, message := apperror.MapToHTTPStatus(err)
	assert.Equal(t, 500, status)
	assert.Contains(t, message, "specialties")
	mockLookup.AssertNotCalled(t, "Lookup", mock.Anything, mock.Anything)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateDeveloper_Fail_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name  string
		input func() domain.DeveloperInput
		field string
	}{
		{"sem nome", func() domain.DeveloperInput { in := validInput(); in.FullName = ""; return in }, "fullName"},
		{"sem celular", func() domain.DeveloperInput { in := validInput(); in.Cellphone = ""; return in }, "cellphone"},
		{"celular não numérico", func() domain.DeveloperInput { in := validInput(); in.Cellphone = "abc"; return in }, "cellphone"},
		{"sem cep", func() domain.DeveloperInput { in := validInput(); in.Cep = ""; return in }, "cep"},
		{"sem especialidades", func() domain.DeveloperInput { in := validInput(); in.Specialties = nil; return in }, "specialties"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockDeveloperRepository)
			mockLookup := new(MockAddressLookup)
			svc := newTestService(mockRepo, mockLookup, developerservice.Options{})

			_, err := svc.CreateDeveloper(context.Background(), tt.input())

			require.Error(t, err)
			assert.IsType(t, &apperror.InternalError{}, err)
			assert.Contains(t, err.Error(), tt.field)
			mockLookup.AssertNotCalled(t, "Lookup", mock.Anything, mock.Anything)
			mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestCreateDeveloper_Fail_ValidationAsBadRequest(t *testing.T) {
	mockRepo := new(MockDeveloperRepository)
	mockLookup := new(MockAddressLookup)
	svc := newTestService(mockRepo, mockLookup, developerservice.Options{ValidationAsBadRequest: true})

	in := validInput()
	in.Specialties = []string{"Go"}

	_, err := svc.CreateDeveloper(context.Background(), in)

	var validationErr *apperror.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "specialties", validationErr.Fields[0].Field)
	status, category, _ := apperror.MapToHTTPStatus(err)
	assert.Equal(t, 400, status)
	assert.Equal(t, "VALIDATION_ERROR", category)
}

func TestCreateDeveloper_Fail_LookupError(t *testing.T) {
	mockRepo := new(MockDeveloperRepository)
	mockLookup := new(MockAddressLookup)
	svc := newTestService(mockRepo, mockLookup, developerservice.Options{})

	in := validInput()
	mockLookup.On("Lookup", mock.Anything, in.Cep).
		Return(domain.Address{}, apperror.NewInternalError("Falha ao consultar o CEP", errors.New("timeout")))

	_, err := svc.CreateDeveloper(context.Background(), in)

	assert.IsType(t, &apperror.InternalError{}, err)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateDeveloper_Fail_RepoConflict(t *testing.T) {
	mockRepo := new(MockDeveloperRepository)
	mockLookup := new(MockAddressLookup)
	svc := newTestService(mockRepo, mockLookup, developerservice.Options{})

	in := validInput()
	mockLookup.On("Lookup", mock.Anything, in.Cep).Return(lookupAddress, nil)
	mockRepo.On("Create", mock.Anything, mock.Anything).
		Return(domain.Developer{}, apperror.NewConflictError("Registro duplicado"))

	_, err := svc.CreateDeveloper(context.Background(), in)

	assert.IsType(t, &apperror.ConflictError{}, err)
}

// --- Testes para GetDeveloperByID ---

func TestGetDeveloperByID_Success(t *testing.T) {
	mockRepo := new(MockDeveloperRepository)
	svc := newTestService(mockRepo, new(MockAddressLookup), developerservice.Options{})

	expected := domain.Developer{ID: 3, FullName: "Grace Hopper"}
	mockRepo.On("FindByID", mock.Anything, int64(3)).Return(expected, nil)

	result, err := svc.GetDeveloperByID(context.Background(), 3)

	assert.NoError(t, err)
	assert.Equal(t, expected, result)
}

func TestGetDeveloperByID_Fail_NotFound(t *testing.T) {
	mockRepo := new(MockDeveloperRepository)
	svc := newTestService(mockRepo, new(MockAddressLookup), developerservice.Options{})

	mockRepo.On("FindByID", mock.Anything, int64(99)).
		Return(domain.Developer{}, apperror.NewNotFoundError("Desenvolvedor com ID 99 não encontrado."))

	_, err := svc.GetDeveloperByID(context.Background(), 99)

	assert.True(t, apperror.IsNotFound(err))
}

// --- Testes para UpdateDeveloper ---

func TestUpdateDeveloper_Success(t *testing.T) {
	mockRepo := new(MockDeveloperRepository)
	mockLookup := new(MockAddressLookup)
	svc := newTestService(mockRepo, mockLookup, developerservice.Options{})

	existing := domain.Developer{ID: 5, FullName: "Antigo", Cellphone: "1", Specialties: "Go, Rust", Cep: "20000000"}
	in := validInput()
	in.Specialties = []string{"Java"} // atualização não exige o mínimo de criação

	patch := in.ToDeveloper(lookupAddress)
	patch.ID = 5
	mockRepo.On("FindByID", mock.Anything, int64(5)).Return(existing, nil)
	mockLookup.On("Lookup", mock.Anything, in.Cep).Return(lookupAddress, nil)
	mockRepo.On("Update", mock.Anything, existing, patch).Return(patch, nil)

	result, err := svc.UpdateDeveloper(context.Background(), 5, in)

	require.NoError(t, err)
	assert.Equal(t, int64(5), result.ID)
	assert.Equal(t, "Java", result.Specialties)
	assert.Equal(t, lookupAddress.City, result.City)
	mockRepo.AssertExpectations(t)
	mockLookup.AssertExpectations(t)
}

func TestUpdateDeveloper_Fail_NotFoundSkipsLookup(t *testing.T) {
	mockRepo := new(MockDeveloperRepository)
	mockLookup := new(MockAddressLookup)
	svc := newTestService(mockRepo, mockLookup, developerservice.Options{})

	mockRepo.On("FindByID", mock.Anything, int64(404)).
		Return(domain.Developer{}, apperror.NewNotFoundError("Desenvolvedor com ID 404 não encontrado."))

	_, err := svc.UpdateDeveloper(context.Background(), 404, validInput())

	assert.IsType(t, &apperror.NotFoundError{}, err)
	mockLookup.AssertNotCalled(t, "Lookup", mock.Anything, mock.Anything)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateDeveloper_Fail_InvalidInput(t *testing.T) {
	mockRepo := new(MockDeveloperRepository)
	mockLookup := new(MockAddressLookup)
	svc := newTestService(mockRepo, mockLookup, developerservice.Options{})

	in := validInput()
	in.FullName = ""

	_, err := svc.UpdateDeveloper(context.Background(), 1, in)

	assert.IsType(t, &apperror.InternalError{}, err)
	mockRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

// --- Testes para DeleteDeveloper ---

func TestDeleteDeveloper_Success(t *testing.T) {
	mockRepo := new(MockDeveloperRepository)
	svc := newTestService(mockRepo, new(MockAddressLookup), developerservice.Options{})

	existing := domain.Developer{ID: 8, FullName: "Linus"}
	mockRepo.On("FindByID", mock.Anything, int64(8)).Return(existing, nil)
	mockRepo.On("Delete", mock.Anything, existing).Return(nil)

	result, err := svc.DeleteDeveloper(context.Background(), 8)

	require.NoError(t, err)
	assert.Equal(t, "Desenvolvedor 8 removido com sucesso.", result.Message)
	assert.Equal(t, existing, result.Developer)
	mockRepo.AssertExpectations(t)
}

func TestDeleteDeveloper_Fail_NotFound(t *testing.T) {
	mockRepo := new(MockDeveloperRepository)
	svc := newTestService(mockRepo, new(MockAddressLookup), developerservice.Options{})

	mockRepo.On("FindByID", mock.Anything, int64(9)).
		Return(domain.Developer{}, apperror.NewNotFoundError("Desenvolvedor com ID 9 não encontrado."))

	_, err := svc.DeleteDeveloper(context.Background(), 9)

	status, _, _ := apperror.MapToHTTPStatus(err)
	assert.Equal(t, 404, status)
	mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteDeveloper_Fail_RepoError(t *testing.T) {
	mockRepo := new(MockDeveloperRepository)
	svc := newTestService(mockRepo, new(MockAddressLookup), developerservice.Options{})

	existing := domain.Developer{ID: 8}
	mockRepo.On("FindByID", mock.Anything, int64(8)).Return(existing, nil)
	mockRepo.On("Delete", mock.Anything, existing).Return(errors.New("driver: bad connection"))

	_, err := svc.DeleteDeveloper(context.Background(), 8)

	assert.IsType(t, &apperror.InternalError{}, err)
}

// --- Testes para as buscas ---

func TestGetDeveloperByFullName_Success(t *testing.T) {
	mockRepo := new(MockDeveloperRepository)
	svc := newTestService(mockRepo, new(MockAddressLookup), developerservice.Options{})

	expected := domain.Developer{ID: 2, FullName: "Ada Lovelace"}
	mockRepo.On("FindOneWhere", mock.Anything, domain.FieldFullName, "Ada Lovelace").Return(expected, nil)

	result, err := svc.GetDeveloperByFullName(context.Background(), "Ada Lovelace")

	assert.NoError(t, err)
	assert.Equal(t, expected, result)
}

func TestGetDeveloperByCellphone_Fail_NotFound(t *testing.T) {
	mockRepo := new(MockDeveloperRepository)
	svc := newTestService(mockRepo, new(MockAddressLookup), developerservice.Options{})

	mockRepo.On("FindOneWhere", mock.Anything, domain.FieldCellphone, "000").
		Return(domain.Developer{}, apperror.NewNotFoundError("Nenhum desenvolvedor encontrado."))

	_, err := svc.GetDeveloperByCellphone(context.Background(), "000")

	assert.IsType(t, &apperror.NotFoundError{}, err)
}

func TestGetDevelopersByCep_Success(t *testing.T) {
	mockRepo := new(MockDeveloperRepository)
	svc := newTestService(mockRepo, new(MockAddressLookup), developerservice.Options{})

	expected := []domain.Developer{{ID: 1, Cep: "01001000"}, {ID: 4, Cep: "01001000"}}
	mockRepo.On("FindAllWhere", mock.Anything, domain.FieldCep, "01001000").Return(expected, nil)

	result, err := svc.GetDevelopersByCep(context.Background(), "01001000")

	assert.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestGetDevelopersByCep_Fail_NoneIsNotFound(t *testing.T) {
	mockRepo := new(MockDeveloperRepository)
	svc := newTestService(mockRepo, new(MockAddressLookup), developerservice.Options{})

	mockRepo.On("FindAllWhere", mock.Anything, domain.FieldCep, "99999999").Return([]domain.Developer{}, nil)

	_, err := svc.GetDevelopersByCep(context.Background(), "99999999")

	assert.IsType(t, &apperror.NotFoundError{}, err)
}

func TestGetDevelopersBySpeciality_Success_SubstringMatch(t *testing.T) {
	mockRepo := new(MockDeveloperRepository)
	svc := newTestService(mockRepo, new(MockAddressLookup), developerservice.Options{})

	expected := []domain.Developer{{ID: 1, Specialties: "JavaScript, Python"}}
	mockRepo.On("FindAllLike", mock.Anything, domain.FieldSpecialties, "Java").Return(expected, nil)

	result, err := svc.GetDevelopersBySpeciality(context.Background(), "Java")

	assert.NoError(t, err)
	assert.Equal(t, expected, result)
}

func TestGetDevelopersBySpeciality_Success_NoneIsEmptyList(t *testing.T) {
	mockRepo := new(MockDeveloperRepository)
	svc := newTestService(mockRepo, new(MockAddressLookup), developerservice.Options{})

	mockRepo.On("FindAllLike", mock.Anything, domain.FieldSpecialties, "Cobol").Return(nil, nil)

	result, err := svc.GetDevelopersBySpeciality(context.Background(), "Cobol")

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

// --- Fluxos completos sobre um repositório em memória ---

// memoryRepository guarda os registros em um map, com IDs sequenciais.
type memoryRepository struct {
	rows   map[int64]domain.Developer
	nextID int64
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{rows: map[int64]domain.Developer{}}
}

func (m *memoryRepository) FindAll(ctx context.Context) ([]domain.Developer, error) {
	out := []domain.Developer{}
	for id := int64(1); id <= m.nextID; id++ {
		if dev, ok := m.rows[id]; ok {
			out = append(out, dev)
		}
	}
	return out, nil
}

func (m *memoryRepository) FindByID(ctx context.Context, id int64) (domain.Developer, error) {
	dev, ok := m.rows[id]
	if !ok {
		return domain.Developer{}, apperror.NewNotFoundError("Desenvolvedor não encontrado.")
	}
	return dev, nil
}

func (m *memoryRepository) FindOneWhere(ctx context.Context, field domain.DeveloperField, value string) (domain.Developer, error) {
	return domain.Developer{}, apperror.NewNotFoundError("não usado")
}

func (m *memoryRepository) FindAllWhere(ctx context.Context, field domain.DeveloperField, value string) ([]domain.Developer, error) {
	return []domain.Developer{}, nil
}

func (m *memoryRepository) FindAllLike(ctx context.Context, field domain.DeveloperField, value string) ([]domain.Developer, error) {
	return []domain.Developer{}, nil
}

func (m *memoryRepository) Create(ctx context.Context, dev domain.Developer) (domain.Developer, error) {
	m.nextID++
	dev.ID = m.nextID
	m.rows[dev.ID] = dev
	return dev, nil
}

func (m *memoryRepository) Update(ctx context.Context, existing domain.Developer, patch domain.Developer) (domain.Developer, error) {
	if _, ok := m.rows[existing.ID]; !ok {
		return domain.Developer{}, apperror.NewNotFoundError("Desenvolvedor não encontrado.")
	}
	patch.ID = existing.ID
	m.rows[existing.ID] = patch
	return patch, nil
}

func (m *memoryRepository) Delete(ctx context.Context, existing domain.Developer) error {
	if _, ok := m.rows[existing.ID]; !ok {
		return apperror.NewNotFoundError("Desenvolvedor não encontrado.")
	}
	delete(m.rows, existing.ID)
	return nil
}

func newMemoryService(repo *memoryRepository) *developerservice.Service {
	lookup := new(MockAddressLookup)
	lookup.On("Lookup", mock.Anything, mock.Anything).Return(lookupAddress, nil)
	return developerservice.NewService(repo, lookup, validation.NewDeveloperValidator(), developerservice.Options{}, logger.NewNopLogger())
}

func TestCreateThenGetByID_RoundTrip(t *testing.T) {
	repo := newMemoryRepository()
	svc := newMemoryService(repo)
	ctx := context.Background()

	created, err := svc.CreateDeveloper(ctx, validInput())
	require.NoError(t, err)

	found, err := svc.GetDeveloperByID(ctx, created.ID)

	require.NoError(t, err)
	assert.Equal(t, created, found)
	assert.Equal(t, "Ada Lovelace", found.FullName)
	assert.Equal(t, "11987654321", found.Cellphone)
	assert.Equal(t, "JavaScript, Python", found.Specialties)
	assert.Equal(t, "01001000", found.Cep)
	assert.Equal(t, lookupAddress.Street, found.Street)
	assert.Equal(t, lookupAddress.City, found.City)
}

func TestDeleteThenGetByID_NotFound(t *testing.T) {
	repo := newMemoryRepository()
	svc := newMemoryService(repo)
	ctx := context.Background()

	created, err := svc.CreateDeveloper(ctx, validInput())
	require.NoError(t, err)

	result, err := svc.DeleteDeveloper(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, result.Developer)

	_, err = svc.GetDeveloperByID(ctx, created.ID)
	assert.IsType(t, &apperror.NotFoundError{}, err)

	_, err = svc.DeleteDeveloper(ctx, created.ID)
	assert.IsType(t, &apperror.NotFoundError{}, err)

	_, err = svc.ListDevelopers(ctx)
	assert.IsType(t, &apperror.NotFoundError{}, err)
}

func TestCreateInvalid_LeavesStoreUnchanged(t *testing.T) {
	repo := newMemoryRepository()
	svc := newMemoryService(repo)

	in := validInput()
	in.Specialties = []string{"Go"}

	_, err := svc.CreateDeveloper(context.Background(), in)

	assert.IsType(t, &apperror.InternalError{}, err)
	assert.Empty(t, repo.rows)
}
