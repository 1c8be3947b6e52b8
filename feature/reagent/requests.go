package reagent

import "errors"

// BatchDetails carries the six descriptive fields that form a batch's merge key
// together with the owning reagent.
type BatchDetails struct {
	BatchNo      string `json:"batchNo"`
	ProdDate     string `json:"prodDate"`
	ExpDate      string `json:"expDate"`
	TestsPerUnit int    `json:"testsPerUnit"`
	Location     string `json:"location"`
	Temp         string `json:"temp"`
}

// StockInRequest is the payload for POST /api/reagents/in.
type StockInRequest struct {
	Name         string       `json:"name"`
	ArticleNo    string       `json:"articleNo"`
	Manufacturer string       `json:"manufacturer"`
	Category     string       `json:"category"`
	Qty          int          `json:"qty"`
	BatchDetails BatchDetails `json:"batchDetails"`
	Operator     string       `json:"operator"`
}

// Validate rejects malformed stock-in payloads before any store access.
func (r StockInRequest) Validate() error {
	switch {
	case r.Name == "":
		return errors.New("reagent name is required")
	case r.ArticleNo == "":
		return errors.New("article number is required")
	case r.Manufacturer == "":
		return errors.New("manufacturer is required")
	case r.Operator == "":
		return errors.New("operator is required")
	case r.Qty <= 0:
		return errors.New("container quantity must be positive")
	case r.BatchDetails.BatchNo == "":
		return errors.New("batch number is required")
	case r.BatchDetails.ProdDate == "":
		return errors.New("production date is required")
	case r.BatchDetails.ExpDate == "":
		return errors.New("expiry date is required")
	case r.BatchDetails.TestsPerUnit <= 0:
		return errors.New("tests per unit must be positive")
	}
	return nil
}

// StockOutRequest is the payload for POST /api/reagents/out. ReagentName and
// BatchNo are display fields for the audit record only; the batch is resolved
// by its id.
type StockOutRequest struct {
	BatchID     string `json:"batchId"`
	Amount      int    `json:"amount"`
	ReagentName string `json:"reagentName"`
	BatchNo     string `json:"batchNo"`
	User        string `json:"user"`
	Purpose     string `json:"purpose"`
}

// Validate rejects malformed stock-out payloads before any store access.
func (r StockOutRequest) Validate() error {
	switch {
	case r.BatchID == "":
		return errors.New("batch id is required")
	case r.User == "":
		return errors.New("user is required")
	}
	return nil
}
