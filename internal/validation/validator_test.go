package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/umalmyha/crm-console/internal/model"
)

func TestEnglishValidator(t *testing.T) {
	v, err := English()
	require.NoError(t, err, "validator must be built")

	t.Log("valid customer passes")
	{
		c := &model.Customer{
			CustomerName:         "Acme",
			CustomerAbbreviation: "ACM",
			AddressOne:           "1 Main Street",
			OfficialEmail:        "office@acme.com",
			GstNo:                "22AAAAA0000A1Z5",
		}
		require.NoError(t, v.Validate(c), "customer must be valid")
	}

	t.Log("violations are reported with form field names")
	{
		c := &model.Customer{CustomerName: "Acme", OfficialEmail: "not-an-email"}
		err := v.Validate(c)

		var pldErr *PayloadError
		require.True(t, errors.As(err, &pldErr), "payload error must be returned")
		require.Contains(t, pldErr.Messages(), "gstNo is a required field", "required message must use form name")
		require.Contains(t, pldErr.Messages(), "officialEmail must be a valid email address", "email message must be translated")
		require.Contains(t, pldErr.Error(), "addressOne is a required field", "messages must be joined")
	}
}
