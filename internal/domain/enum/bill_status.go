package enum

import (
	"encoding/json"
	"fmt"
)

// BillStatus represents where a bill is in its lifecycle
type BillStatus int

const (
	BillStatusBuilding   BillStatus = 0 // selection only, no bill yet
	BillStatusOpen       BillStatus = 1 // bill shown for payment
	BillStatusIncomplete BillStatus = 2 // parked in the incomplete set
	BillStatusPaid       BillStatus = 3 // terminal
)

var billStatusNames = [...]string{"Building", "Open", "Incomplete", "Paid"}

func (s BillStatus) String() string {
	if s < 0 || int(s) >= len(billStatusNames) {
		return fmt.Sprintf("BillStatus(%d)", int(s))
	}
	return billStatusNames[s]
}

func (s BillStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *BillStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = BillStatus(i)
		return nil
	}
	for i, name := range billStatusNames {
		if name == str {
			*s = BillStatus(i)
			return nil
		}
	}
	return fmt.Errorf("unknown bill status %q", str)
}

