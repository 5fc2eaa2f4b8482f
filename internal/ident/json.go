package ident

import "encoding/json"

// Each identifier type round-trips through JSON as a plain string, so that
// persisted environment documents stay human-readable. Unmarshaling
// re-validates through the smart constructor — an identifier can never
// reach memory in an invalid shape, whether freshly constructed or loaded
// from disk.

func (n EnvironmentName) MarshalJSON() ([]byte, error) { return json.Marshal(n.value) }

func (n *EnvironmentName) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := NewEnvironmentName(raw)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

func (n InstanceName) MarshalJSON() ([]byte, error) { return json.Marshal(n.value) }

func (n *InstanceName) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := NewInstanceName(raw)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

func (n ProfileName) MarshalJSON() ([]byte, error) { return json.Marshal(n.value) }

func (n *ProfileName) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := NewProfileName(raw)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

func (n DomainName) MarshalJSON() ([]byte, error) { return json.Marshal(n.value) }

func (n *DomainName) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := NewDomainName(raw)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

func (n Username) MarshalJSON() ([]byte, error) { return json.Marshal(n.value) }

func (n *Username) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := NewUsername(raw)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}
