package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/shipping-form/app/models"
	"github.com/shipping-form/app/services"
	"github.com/shipping-form/internal/form"
	"github.com/shipping-form/internal/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubDriver struct {
	inputs    []string
	selectIdx []int
	inputPos  int
	selectPos int

	// bypass bỏ qua validator như khi dữ liệu đến từ nguồn không kiểm tra
	bypass   bool
	rejected []string
	selects  []SelectConfig
	infos    []string
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	for {
		if s.inputPos >= len(s.inputs) {
			return "", errors.New("no input scripted")
		}
		val := s.inputs[s.inputPos]
		s.inputPos++
		if !s.bypass && cfg.Validator != nil && cfg.Validator(val) != nil {
			s.rejected = append(s.rejected, val)
			continue
		}
		return val, nil
	}
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	s.selects = append(s.selects, cfg)
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infos = append(s.infos, msg)
	return nil
}

type recordingSink struct {
	got []models.FormValues
}

func (r *recordingSink) Deliver(_ context.Context, v models.FormValues) (string, error) {
	r.got = append(r.got, v)
	return services.AckMessage, nil
}

var personInputs = []string{"Lê Văn C", "", "079090001234", "0901234567", "c@example.com", "7", "Lê Lợi"}

func withDOB(dob string) []string {
	out := append([]string(nil), personInputs...)
	out[1] = dob
	return out
}

func flatForm(t *testing.T) *form.Form {
	t.Helper()
	c := geo.NewFlatCascader(&geo.FlatDataset{
		Provinces: []models.GeoUnit{
			{Code: "79", Name: "Thành phố Hồ Chí Minh"},
			{Code: "01", Name: "Thành phố Hà Nội"},
		},
		Wards: []models.RawRecord{
			{"code": "26737", "name_with_type": "Phường Đa Kao", "parent_code": "79"},
			{"code": "26734", "name_with_type": "Phường Bến Nghé", "parent_code": "79"},
			{"code": "00001", "name_with_type": "Phường Phúc Xá", "parent_code": "01"},
		},
	}, geo.MatchCodeOrPath)
	v, err := form.NewValidator(form.ProfileFor(geo.ShapeFlat))
	require.NoError(t, err)
	return form.New(c, v)
}

func nestedForm(t *testing.T) *form.Form {
	t.Helper()
	c := geo.NewNestedCascader([]models.NestedProvince{
		{Name: "Thành phố Đà Nẵng", Districts: []models.NestedDistrict{
			{Name: "Quận Hải Châu", Wards: []string{"Phường Thạch Thang"}},
		}},
	})
	v, err := form.NewValidator(form.ProfileFor(geo.ShapeNested))
	require.NoError(t, err)
	return form.New(c, v)
}

func newRunner(d Driver, f *form.Form, sink *recordingSink) *Runner {
	logger := zap.NewNop()
	return NewRunner(d, f, services.NewSubmissionService(sink, logger), logger, WithDOBHelp("dd/mm/yyyy"))
}

func TestRunner_FlatDatasetSkipsDistricts(t *testing.T) {
	d := &stubDriver{inputs: withDOB("20/05/1990"), selectIdx: []int{0, 1}}
	sink := &recordingSink{}

	receipt, err := newRunner(d, flatForm(t), sink).Run(context.Background())
	require.NoError(t, err)

	require.Len(t, d.selects, 2)
	assert.Equal(t, []string{"Thành phố Hồ Chí Minh", "Thành phố Hà Nội"}, d.selects[0].Options)
	assert.Equal(t, []string{"Phường Bến Nghé", "Phường Đa Kao"}, d.selects[1].Options)
	require.NotNil(t, d.selects[0].Filter)
	assert.True(t, d.selects[0].Filter("tp hcm", d.selects[0].Options[0]))

	assert.Equal(t, "79", receipt.Values.Province)
	assert.Empty(t, receipt.Values.District)
	assert.Equal(t, "26737", receipt.Values.Ward)
	assert.Equal(t, []string{services.AckMessage}, d.infos)
	require.Len(t, sink.got, 1)
}

func TestRunner_OptionalProvinceCanBeSkipped(t *testing.T) {
	d := &stubDriver{inputs: withDOB("1990-05-20"), selectIdx: []int{0}}
	sink := &recordingSink{}

	receipt, err := newRunner(d, nestedForm(t), sink).Run(context.Background())
	require.NoError(t, err)

	require.Len(t, d.selects, 1)
	assert.Equal(t, SkipOption, d.selects[0].Options[0])
	assert.Empty(t, receipt.Values.Province)
	assert.Empty(t, receipt.Values.Ward)
}

func TestRunner_NestedCascade(t *testing.T) {
	d := &stubDriver{inputs: withDOB("1990-05-20"), selectIdx: []int{1, 0, 0}}

	receipt, err := newRunner(d, nestedForm(t), &recordingSink{}).Run(context.Background())
	require.NoError(t, err)

	require.Len(t, d.selects, 3)
	assert.Equal(t, []string{"Quận Hải Châu"}, d.selects[1].Options, "required district has no skip option")
	assert.Equal(t, "Thành phố Đà Nẵng", receipt.Values.Province)
	assert.Equal(t, "Quận Hải Châu", receipt.Values.District)
	assert.Equal(t, "Phường Thạch Thang", receipt.Values.Ward)
}

func TestRunner_InputValidatorRejects(t *testing.T) {
	inputs := []string{"Lê Văn C", "31/02/1990", "20/05/1990", "12345", "079090001234", "0901234567", "c@example.com", "7", "Lê Lợi"}
	d := &stubDriver{inputs: inputs, selectIdx: []int{1, 0}}

	receipt, err := newRunner(d, flatForm(t), &recordingSink{}).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"31/02/1990", "12345"}, d.rejected)
	assert.Equal(t, "20/05/1990", receipt.Values.DOB)
	assert.Equal(t, "00001", receipt.Values.Ward)
}

func TestRunner_ReasksInvalidFields(t *testing.T) {
	inputs := []string{"Lê Văn C", "20/05/1990", "079090001234", "123", "c@example.com", "7", "Lê Lợi", "0901234567"}
	d := &stubDriver{inputs: inputs, selectIdx: []int{0, 0}, bypass: true}
	sink := &recordingSink{}

	receipt, err := newRunner(d, flatForm(t), sink).Run(context.Background())
	require.NoError(t, err)

	require.Len(t, d.infos, 2)
	assert.Contains(t, d.infos[0], Labels[models.FieldPhone])
	assert.Equal(t, services.AckMessage, d.infos[1])
	assert.Equal(t, "0901234567", receipt.Values.Phone)
	assert.Len(t, d.selects, 2, "select fields are not asked again")
	require.Len(t, sink.got, 1)
}

func TestRunner_Aborted(t *testing.T) {
	d := &abortDriver{}
	_, err := newRunner(d, flatForm(t), &recordingSink{}).Run(context.Background())
	assert.ErrorIs(t, err, ErrAborted)
}

type abortDriver struct{ stubDriver }

func (a *abortDriver) Input(context.Context, InputConfig) (string, error) { return "", ErrAborted }

func TestRunner_DuplicateWardNamesResolveByIndex(t *testing.T) {
	c := geo.NewFlatCascader(&geo.FlatDataset{
		Provinces: []models.GeoUnit{{Code: "79", Name: "Thành phố Hồ Chí Minh"}},
		Wards: []models.RawRecord{
			{"code": "26743", "name_with_type": "Phường 1", "path_with_type": "Phường 1, Quận 3, Thành phố Hồ Chí Minh", "parent_code": "79"},
			{"code": "27259", "name_with_type": "Phường 1", "path_with_type": "Phường 1, Quận 5, Thành phố Hồ Chí Minh", "parent_code": "79"},
			{"code": "26746", "name_with_type": "Phường 2", "parent_code": "79"},
		},
	}, geo.MatchCodeOrPath)
	v, err := form.NewValidator(form.ProfileFor(geo.ShapeFlat))
	require.NoError(t, err)

	d := &stubDriver{inputs: withDOB("20/05/1990"), selectIdx: []int{0, 1}}
	logger := zap.NewNop()
	r := NewRunner(d, form.New(c, v), services.NewSubmissionService(&recordingSink{}, logger), logger, WithPageSize(3))

	receipt, err := r.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, d.selects, 2)
	assert.Equal(t, []string{"Phường 1", "Phường 1", "Phường 2"}, d.selects[1].Options)
	assert.Equal(t, 3, d.selects[1].PageSize)
	assert.Equal(t, "27259", receipt.Values.Ward)
}
