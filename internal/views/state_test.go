package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/tradebook/internal/nav"
)

var today = time.Date(2024, time.March, 1, 9, 30, 0, 0, time.UTC)

func TestNewState_Defaults(t *testing.T) {
	s := NewState(today)

	for _, v := range nav.AllViews {
		assert.Equal(t, ErrorSlot{}, s.Error(v), "view %s", v)
	}
	assert.Empty(t, s.Forms(nav.Main))
	assert.Equal(t, []FormID{FormPartner}, s.Forms(nav.Partners))
	assert.Equal(t, []FormID{FormSale}, s.Forms(nav.Sales))
	assert.Equal(t, []FormID{FormProduct, FormProductType}, s.Forms(nav.Products))

	for _, f := range []FormID{FormPartner, FormSale, FormProduct, FormProductType} {
		slot := s.Form(f)
		require.NotNil(t, slot, "form %s", f)
		assert.False(t, slot.Open, "form %s", f)
	}

	sale := s.Form(FormSale).Fields.(*SaleForm)
	assert.Equal(t, 2024, sale.Year)
	assert.Equal(t, 61, sale.Day)
}

func TestState_ErrorSlot(t *testing.T) {
	s := NewState(today)

	assert.False(t, s.ShowError(nav.Main, "ignored"), "main has no error slot")
	assert.Equal(t, ErrorSlot{}, s.Error(nav.Main))

	require.True(t, s.ShowError(nav.Partners, "first"))
	require.True(t, s.ShowError(nav.Partners, "second"))
	assert.Equal(t, ErrorSlot{Visible: true, Message: "second"}, s.Error(nav.Partners))
	assert.Equal(t, ErrorSlot{}, s.Error(nav.Sales), "slots are per view")

	s.DismissError(nav.Partners)
	got := s.Error(nav.Partners)
	assert.False(t, got.Visible)
	assert.Equal(t, "second", got.Message)
}

func TestState_FormsKeepValuesWhenClosed(t *testing.T) {
	s := NewState(today)

	s.OpenForm(FormPartner)
	require.True(t, s.Form(FormPartner).Open)
	require.NoError(t, s.Form(FormPartner).Fields.Set("partner_name", "Acme"))

	s.CloseForm(FormPartner)
	assert.False(t, s.Form(FormPartner).Open)

	s.OpenForm(FormPartner)
	form := s.Form(FormPartner).Fields.(*PartnerForm)
	assert.Equal(t, "Acme", form.PartnerName)
}

func TestFormID_NamesAndViews(t *testing.T) {
	tests := []struct {
		name string
		form FormID
		view nav.View
	}{
		{"partner", FormPartner, nav.Partners},
		{"sale", FormSale, nav.Sales},
		{"product", FormProduct, nav.Products},
		{"product-type", FormProductType, nav.Products},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.form.String())
			assert.Equal(t, tt.view, tt.form.View())

			got, ok := ParseForm(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.form, got)
		})
	}

	_, ok := ParseForm("invoice")
	assert.False(t, ok)
}

func TestState_SetField(t *testing.T) {
	s := NewState(today)
	require.NoError(t, s.SetField(FormProductType, "product_type", "Laminate"))
	assert.Equal(t, "Laminate", s.Form(FormProductType).Fields.(*ProductTypeForm).ProductType)

	err := s.SetField(FormSale, "quantity", "many")
	require.Error(t, err)
	assert.Equal(t, `quantity must be a whole number, got "many"`, err.Error())

	assert.Error(t, s.SetField(FormID(99), "x", "y"))
}
