package equipment

import "errors"

// RegisterRequest is the payload for POST /api/equipment.
type RegisterRequest struct {
	Name           string `json:"name"`
	Manufacturer   string `json:"manufacturer"`
	Model          string `json:"model"`
	SerialNo       string `json:"serialNo"`
	Quantity       int    `json:"quantity"`
	Location       string `json:"location"`
	Status         string `json:"status"`
	PurchaseDate   string `json:"purchaseDate"`
	DeploymentDate string `json:"deploymentDate"`
	WarrantyDate   string `json:"warrantyDate"`
	PersonInCharge string `json:"personInCharge"`
	Operator       string `json:"operator"`
}

// Validate rejects malformed registration payloads before any store access.
func (r RegisterRequest) Validate() error {
	switch {
	case r.Name == "":
		return errors.New("equipment name is required")
	case r.Operator == "":
		return errors.New("operator is required")
	case r.Quantity < 0:
		return errors.New("quantity must not be negative")
	}
	return nil
}

// EditRequest is the payload for PUT /api/equipment/:id. Name and serial
// number are immutable after registration and deliberately absent here.
type EditRequest struct {
	Manufacturer   string `json:"manufacturer"`
	Location       string `json:"location"`
	Status         string `json:"status"`
	Quantity       int    `json:"quantity"`
	PurchaseDate   string `json:"purchaseDate"`
	DeploymentDate string `json:"deploymentDate"`
	WarrantyDate   string `json:"warrantyDate"`
	PersonInCharge string `json:"personInCharge"`
	Operator       string `json:"operator"`
}

// Validate rejects malformed edit payloads before any store access.
func (r EditRequest) Validate() error {
	if r.Quantity < 0 {
		return errors.New("quantity must not be negative")
	}
	return nil
}

// MaintenanceRequest is the payload for POST /api/equipment/:id/maintenance.
type MaintenanceRequest struct {
	Date     string `json:"date"`
	Type     string `json:"type"`
	Notes    string `json:"notes"`
	Operator string `json:"operator"`
}

// Validate rejects malformed maintenance payloads before any store access.
func (r MaintenanceRequest) Validate() error {
	switch {
	case r.Date == "":
		return errors.New("log date is required")
	case r.Type == "":
		return errors.New("log type is required")
	case r.Operator == "":
		return errors.New("operator is required")
	}
	return nil
}

// nilIfEmpty normalizes optional string fields: an empty string is stored as
// NULL, never as "".
func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
