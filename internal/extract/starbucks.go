package extract

import "github.com/shopspring/decimal"

// StarbucksMarker is the vendor marker of the one fully characterized
// invoice template.
const StarbucksMarker = "STARBUCKS COFFEE CANADA"

// StarbucksShippingCode is the fixed freight line of that template. Its
// amount belongs in the standalone shipping figure, never in a GL bucket.
const StarbucksShippingCode = "000173080"

// StarbucksTemplate returns the built-in fingerprint for the known
// Starbucks Canada invoice, with the fixed item set observed on the
// characterized sample.
func StarbucksTemplate() Template {
	return Template{
		Name:   "starbucks-ca",
		Marker: StarbucksMarker,
		Items: []KnownItem{
			known("011120225", 16, "62.56"),
			known("011107006", 48, "192.48"),
			known("011039690", 6, "40.20"),
			known("011119849", 480, "1286.40"),
			known("011087054", 24, "99.60"),
			known("011104438", 12, "83.76"),
			known("011048109", 60, "657.00"),
			known("011051145", 6, "71.40"),
			known("011092210", 30, "180.00"),
			known("011147043", 12, "132.60"),
			known("011147042", 24, "321.60"),
			known("011112621", 100, "91.00"),
			known("011124712", 324, "942.84"),
			known("011096120", 330, "623.70"),
			known("011104506", 315, "752.85"),
			known("011127439", 63, "238.77"),
			known("011141348", 60, "254.40"),
			known("011070181", 84, "386.40"),
			known("011084236", 192, "230.40"),
			known("011084235", 270, "310.50"),
			known("011053916", 72, "108.72"),
			known("011053919", 80, "30.40"),
			known("011158844", 120, "96.00"),
			known("011077811", 270, "294.30"),
			known("011091451", 126, "205.38"),
			known("011114037", 320, "518.40"),
			known("011112622", 25, "16.75"),
			known("011096116", 288, "688.32"),
			known("011096117", 96, "190.08"),
			known("011106074", 120, "370.80"),
			known("011054031", 420, "1306.20"),
			known("011105398", 135, "359.10"),
			known("011086415", 84, "232.68"),
			known("011083338", 90, "405.90"),
			known("011054038", 54, "188.46"),
			known("011147653", 54, "142.56"),
			known("011124142", 48, "143.04"),
			known("011073715", 150, "82.50"),
			known("011089681", 24, "18.48"),
			known("011128917", 150, "177.00"),
			known("011130862", 80, "68.00"),
			known("011161954", 240, "436.80"),
			known("011049066", 144, "128.16"),
			known("011146832", 114, "145.92"),
			known("011166786", 480, "115.20"),
			known("011163613", 54, "156.60"),
			known("011169125", 126, "356.58"),
			known("011119372", 12, "27.00"),
			known("011076078", 96, "154.56"),
			known("011074672", 108, "153.36"),
			known("011094362", 24, "39.36"),
			known("011046399", 72, "138.96"),
			known("011140121", 24, "25.68"),
			known("011140122", 24, "25.68"),
			known("011162946", 72, "125.28"),
			known("011162943", 72, "125.28"),
			known("011016558", 400, "80.00"),
			known("011039722", 1, "21.61"),
			known("011130854", 200, "28.00"),
			known("011127596", 42, "117.60"),
			known("011127598", 36, "100.80"),
			known("011146627", 12, "31.80"),
			known(StarbucksShippingCode, 1, "332.28"),
		},
	}
}

func known(code string, qty float64, total string) KnownItem {
	return KnownItem{
		Code:      code,
		Quantity:  qty,
		LineTotal: decimal.RequireFromString(total),
	}
}
