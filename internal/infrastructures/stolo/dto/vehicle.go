package dto

type Vehicle struct {
	DocumentID   string  `json:"documentId"`
	VSSID        string  `json:"vssId"`
	OrderingUUID *string `json:"orderingUuid"`

	Offering             Offering             `json:"offering"`
	VehicleSpecification VehicleSpecification `json:"vehicleSpecification"`
	Price                VehiclePrice         `json:"price"`
	Ordering             Ordering             `json:"ordering"`
}

type Offering struct {
	// OfferPrices is keyed by offer type; the service never documents the
	// keys, so consumers take the first entry.
	OfferPrices map[string]OfferPrice `json:"offerPrices"`
}

type OfferPrice struct {
	OfferGrossPrice *float64 `json:"offerGrossPrice"`
}

type VehicleSpecification struct {
	ModelAndOption ModelAndOption `json:"modelAndOption"`
}

type ModelAndOption struct {
	MarketingModelRange string               `json:"marketingModelRange"`
	ModelDescription    map[string]string    `json:"modelDescription"`
	ColorDescription    map[string]string    `json:"colourDescription"`
	Equipments          map[string]Equipment `json:"equipments"`
}

type Equipment struct {
	// Name maps locale codes to the localized equipment name.
	Name map[string]string `json:"name"`
}

type VehiclePrice struct {
	VehicleGrossPrice float64 `json:"vehicleGrossPrice"`
}

type Ordering struct {
	OrderData OrderData `json:"orderData"`
}

type OrderData struct {
	UsageState string `json:"usageState"`
}
