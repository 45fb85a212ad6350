package utils

import "regexp"

var promoCodePattern = regexp.MustCompile(`^PROMO-[A-Z0-9]{4}$`)

// ValidPromoCode checks the PROMO-XXXX format of a promo code.
func ValidPromoCode(code string) bool {
	return promoCodePattern.MatchString(code)
}
