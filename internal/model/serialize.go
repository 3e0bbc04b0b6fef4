package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/invopop/jsonschema"
)

// Operations travel as self-describing envelopes so a decoder can pick the
// concrete variant and refuse payloads written by a newer library.

type opEnvelopeJSON struct {
	Type                string          `json:"type"`
	MinSupportedVersion string          `json:"min_supported_version"`
	Data                json.RawMessage `json:"data"`
}

type opEnvelopeCBOR struct {
	Type                string          `cbor:"type"`
	MinSupportedVersion string          `cbor:"min_supported_version"`
	Data                cbor.RawMessage `cbor:"data"`
}

type versionInfo struct {
	Current      string `json:"current" cbor:"current"`
	MinSupported string `json:"min_supported" cbor:"min_supported"`
}

type circuitWireJSON struct {
	Operations []json.RawMessage `json:"operations"`
	Version    versionInfo       `json:"version"`
}

type circuitWireCBOR struct {
	Operations []cbor.RawMessage `cbor:"operations"`
	Version    versionInfo       `cbor:"version"`
}

func marshalOperationJSON(op Operation) ([]byte, error) {
	data, err := json.Marshal(op)
	if err != nil {
		return nil, &SerializationError{Format: "json", Reason: err.Error()}
	}

	return json.Marshal(opEnvelopeJSON{
		Type:                op.Hqslang(),
		MinSupportedVersion: op.MinSupportedVersion(),
		Data:                data,
	})
}

func unmarshalOperationJSON(data []byte) (Operation, error) {
	var envelope opEnvelopeJSON
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, &SerializationError{Format: "json", Reason: err.Error()}
	}

	if err := checkSupportedVersion(envelope.MinSupportedVersion); err != nil {
		return nil, err
	}

	op, ok := OperationFromName(envelope.Type)
	if !ok {
		return nil, &SerializationError{Format: "json", Reason: "unknown operation type " + envelope.Type}
	}

	if err := json.Unmarshal(envelope.Data, op); err != nil {
		return nil, &SerializationError{Format: "json", Reason: err.Error()}
	}

	return op, nil
}

func marshalOperationCBOR(op Operation) ([]byte, error) {
	data, err := cbor.Marshal(op)
	if err != nil {
		return nil, &SerializationError{Format: "bincode", Reason: err.Error()}
	}

	return cbor.Marshal(opEnvelopeCBOR{
		Type:                op.Hqslang(),
		MinSupportedVersion: op.MinSupportedVersion(),
		Data:                data,
	})
}

func unmarshalOperationCBOR(data []byte) (Operation, error) {
	var envelope opEnvelopeCBOR
	if err := cbor.Unmarshal(data, &envelope); err != nil {
		return nil, &SerializationError{Format: "bincode", Reason: err.Error()}
	}

	if err := checkSupportedVersion(envelope.MinSupportedVersion); err != nil {
		return nil, err
	}

	op, ok := OperationFromName(envelope.Type)
	if !ok {
		return nil, &SerializationError{Format: "bincode", Reason: "unknown operation type " + envelope.Type}
	}

	if err := cbor.Unmarshal(envelope.Data, op); err != nil {
		return nil, &SerializationError{Format: "bincode", Reason: err.Error()}
	}

	return op, nil
}

// OperationToJSON serializes one operation as a typed envelope.
func OperationToJSON(op Operation) ([]byte, error) {
	return marshalOperationJSON(op)
}

// OperationFromJSON decodes a typed operation envelope.
func OperationFromJSON(data []byte) (Operation, error) {
	return unmarshalOperationJSON(data)
}

// OperationToBincode serializes one operation as a compact binary envelope.
func OperationToBincode(op Operation) ([]byte, error) {
	return marshalOperationCBOR(op)
}

// OperationFromBincode decodes a binary operation envelope.
func OperationFromBincode(data []byte) (Operation, error) {
	return unmarshalOperationCBOR(data)
}

// minSupportedVersion is the oldest library version able to read the circuit:
// the maximum of the per-operation minimums.
func (c Circuit) minSupportedVersion() string {
	minimum := "1.0.0"

	for _, op := range c.ops {
		if compareVersion(op.MinSupportedVersion(), minimum) > 0 {
			minimum = op.MinSupportedVersion()
		}
	}

	return minimum
}

// MarshalJSON renders the circuit as an envelope list plus version metadata.
func (c Circuit) MarshalJSON() ([]byte, error) {
	wire := circuitWireJSON{
		Operations: make([]json.RawMessage, len(c.ops)),
		Version: versionInfo{
			Current:      Version,
			MinSupported: c.minSupportedVersion(),
		},
	}

	for i, op := range c.ops {
		data, err := marshalOperationJSON(op)
		if err != nil {
			return nil, err
		}

		wire.Operations[i] = data
	}

	return json.Marshal(wire)
}

// UnmarshalJSON decodes a circuit, rejecting payloads written by a newer
// library than this one.
func (c *Circuit) UnmarshalJSON(data []byte) error {
	var wire circuitWireJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return &SerializationError{Format: "json", Reason: err.Error()}
	}

	if err := checkSupportedVersion(wire.Version.MinSupported); err != nil {
		return err
	}

	ops := make([]Operation, len(wire.Operations))

	for i, raw := range wire.Operations {
		op, err := unmarshalOperationJSON(raw)
		if err != nil {
			return err
		}

		ops[i] = op
	}

	c.ops = ops

	return nil
}

// MarshalCBOR mirrors the JSON layout in CBOR.
func (c Circuit) MarshalCBOR() ([]byte, error) {
	wire := circuitWireCBOR{
		Operations: make([]cbor.RawMessage, len(c.ops)),
		Version: versionInfo{
			Current:      Version,
			MinSupported: c.minSupportedVersion(),
		},
	}

	for i, op := range c.ops {
		data, err := marshalOperationCBOR(op)
		if err != nil {
			return nil, err
		}

		wire.Operations[i] = data
	}

	return cbor.Marshal(wire)
}

// UnmarshalCBOR decodes a binary circuit with the same version check as JSON.
func (c *Circuit) UnmarshalCBOR(data []byte) error {
	var wire circuitWireCBOR
	if err := cbor.Unmarshal(data, &wire); err != nil {
		return &SerializationError{Format: "bincode", Reason: err.Error()}
	}

	if err := checkSupportedVersion(wire.Version.MinSupported); err != nil {
		return err
	}

	ops := make([]Operation, len(wire.Operations))

	for i, raw := range wire.Operations {
		op, err := unmarshalOperationCBOR(raw)
		if err != nil {
			return err
		}

		ops[i] = op
	}

	c.ops = ops

	return nil
}

// ToJSON serializes the circuit.
func (c Circuit) ToJSON() ([]byte, error) {
	return json.Marshal(c)
}

// CircuitFromJSON decodes a circuit from its JSON form.
func CircuitFromJSON(data []byte) (Circuit, error) {
	var c Circuit
	if err := json.Unmarshal(data, &c); err != nil {
		return Circuit{}, err
	}

	return c, nil
}

// ToBincode serializes the circuit in its compact binary form.
func (c Circuit) ToBincode() ([]byte, error) {
	return cbor.Marshal(c)
}

// CircuitFromBincode decodes a circuit from its binary form.
func CircuitFromBincode(data []byte) (Circuit, error) {
	var c Circuit
	if err := cbor.Unmarshal(data, &c); err != nil {
		return Circuit{}, err
	}

	return c, nil
}

// CircuitJSONSchema describes the circuit wire format.
func CircuitJSONSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{ExpandedStruct: true, DoNotReference: false}
	return reflector.Reflect(&circuitWireJSON{})
}

func checkSupportedVersion(minSupported string) error {
	if minSupported == "" {
		return nil
	}

	if compareVersion(minSupported, Version) > 0 {
		return &SerializationError{
			Format: "version",
			Reason: fmt.Sprintf("payload requires library version %s, this library is %s", minSupported, Version),
		}
	}

	return nil
}

// compareVersion orders two dotted numeric versions; missing segments count
// as zero.
func compareVersion(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")

	for i := 0; i < len(as) || i < len(bs); i++ {
		av, bv := 0, 0

		if i < len(as) {
			av, _ = strconv.Atoi(as[i])
		}

		if i < len(bs) {
			bv, _ = strconv.Atoi(bs[i])
		}

		if av != bv {
			if av < bv {
				return -1
			}

			return 1
		}
	}

	return 0
}
