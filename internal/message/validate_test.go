package message

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateSettlement_HideAlert(t *testing.T) {
	err := ValidateSettlement(KindHideAlert, map[string]any{"id": "01HZX3"})
	require.NoError(t, err)

	err = ValidateSettlement(KindHideAlert, map[string]any{"id": "01HZX3", "dismissKey": "undo"})
	require.NoError(t, err)

	// Missing required id.
	err = ValidateSettlement(KindHideAlert, map[string]any{"dismissKey": "undo"})
	require.Error(t, err)

	// Wrong type.
	err = ValidateSettlement(KindHideAlert, map[string]any{"id": 42})
	require.Error(t, err)
}

func TestValidateSettlement_HideConfirmationModal(t *testing.T) {
	require.NoError(t, ValidateSettlement(KindHideConfirmationModal, map[string]any{"confirmed": true}))
	require.NoError(t, ValidateSettlement(KindHideConfirmationModal, nil))

	require.Error(t, ValidateSettlement(KindHideConfirmationModal, map[string]any{"confirmed": "yes"}))
}

func TestValidateSettlement_LocaleChanged(t *testing.T) {
	require.NoError(t, ValidateSettlement(KindLocaleChanged, map[string]any{"currentLocale": "de"}))
	require.Error(t, ValidateSettlement(KindLocaleChanged, map[string]any{}))
}

func TestValidateSettlement_UnknownKindPasses(t *testing.T) {
	require.NoError(t, ValidateSettlement("lifecycle.context-update", map[string]any{"anything": 1}))
}
