package capture

import "ble-sentry.klederson.com/internal/tracker"

// LookupVendor returns a human-readable vendor for an address based on
// its OUI prefix, or "" if unknown. Display-only; randomized addresses
// mostly fall outside the registered ranges.
func LookupVendor(a tracker.Addr) string {
	if name, ok := ouiVendors[a.OUI()]; ok {
		return name
	}
	return ""
}

var ouiVendors = map[uint32]string{
	0x000393: "Apple",
	0x001451: "Apple",
	0xF0D1A9: "Apple",
	0xD0034B: "Apple",
	0x0050F2: "Microsoft",
	0x001A11: "Google",
	0xF88FCA: "Google",
	0x002454: "Samsung",
	0x8C7712: "Samsung",
	0x18B430: "Nest",
	0x00000C: "Cisco",
	0x000C43: "Ralink",
	0x001D0F: "TP-Link",
	0x50C7BF: "TP-Link",
	0xB827EB: "Raspberry Pi",
	0xDCA632: "Raspberry Pi",
	0x24A43C: "Ubiquiti",
	0xF09FC2: "Ubiquiti",
	0x3C5AB4: "Google",
	0x74ACB9: "Ubiquiti",
	0x001788: "Philips",
	0xECFABC: "Espressif",
	0x240AC4: "Espressif",
	0xA4C138: "Telink",
	0x0CF5A4: "Cisco",
	0x00E04C: "Realtek",
	0x5CF370: "CC&C",
	0x9027E4: "Apple",
}
