package location

import (
	"github.com/delivery/backend/internal/application/validation"
	"github.com/delivery/backend/internal/domain/location"
	"github.com/delivery/backend/internal/domain/shared"
)

// Body keys of the address payloads.
const (
	fieldStreet     = "street"
	fieldNumber     = "number"
	fieldComplement = "complement"
	fieldCEP        = "cep"
)

// ParseCreateAddress validates the raw path params and JSON body of a
// create request.
func ParseCreateAddress(rawStateID, rawCityID string, body map[string]any) (CreateAddressCommand, error) {
	ids, err := validation.NumericIDs(
		validation.Param{Label: "state", Raw: rawStateID},
		validation.Param{Label: "city", Raw: rawCityID},
	)
	if err != nil {
		return CreateAddressCommand{}, err
	}
	if err := validation.RequireKeys(body, fieldStreet, fieldNumber, fieldCEP); err != nil {
		return CreateAddressCommand{}, err
	}

	cmd := CreateAddressCommand{StateID: ids[0], CityID: ids[1]}
	if cmd.Street, err = validation.Street(body[fieldStreet]); err != nil {
		return CreateAddressCommand{}, err
	}
	if cmd.Number, err = validation.HouseNumber(body[fieldNumber]); err != nil {
		return CreateAddressCommand{}, err
	}
	if cmd.PostalCode, err = validation.PostalCode(body[fieldCEP]); err != nil {
		return CreateAddressCommand{}, err
	}
	if raw, ok := body[fieldComplement]; ok && raw != nil {
		if cmd.Complement, err = validation.Text(fieldComplement, raw, validation.MaxComplementLen); err != nil {
			return CreateAddressCommand{}, err
		}
	}
	return cmd, nil
}

// ParseAddressPatch validates the fields present in body. At least one
// mutable field must be supplied.
func ParseAddressPatch(body map[string]any) (location.AddressPatch, error) {
	var patch location.AddressPatch

	if raw, ok := body[fieldStreet]; ok {
		street, err := validation.Street(raw)
		if err != nil {
			return patch, err
		}
		patch.Street = &street
	}
	if raw, ok := body[fieldNumber]; ok {
		number, err := validation.HouseNumber(raw)
		if err != nil {
			return patch, err
		}
		patch.Number = &number
	}
	if raw, ok := body[fieldComplement]; ok {
		complement := ""
		if raw != nil {
			var err error
			if complement, err = validation.Text(fieldComplement, raw, validation.MaxComplementLen); err != nil {
				return patch, err
			}
		}
		patch.Complement = &complement
	}
	if raw, ok := body[fieldCEP]; ok {
		cep, err := validation.PostalCode(raw)
		if err != nil {
			return patch, err
		}
		patch.PostalCode = &cep
	}

	if patch.IsEmpty() {
		return patch, shared.NewValidationFailure(
			"At least one of 'street', 'number', 'complement' or 'cep' must be supplied")
	}
	return patch, nil
}
