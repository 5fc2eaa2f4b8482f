package userinput

import "encoding/json"

func (c CronSchedule) MarshalJSON() ([]byte, error) { return json.Marshal(c.value) }

func (c *CronSchedule) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := NewCronSchedule(raw)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (r RetentionDays) MarshalJSON() ([]byte, error) { return json.Marshal(r.value) }

func (r *RetentionDays) UnmarshalJSON(data []byte) error {
	var raw uint32
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := NewRetentionDays(raw)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
