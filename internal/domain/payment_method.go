package domain

import "errors"

type PaymentMethod string

const (
	PaymentMethodCOD    PaymentMethod = "cod"
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodPaypal PaymentMethod = "paypal"
	PaymentMethodStripe PaymentMethod = "stripe"
	PaymentMethodWallet PaymentMethod = "wallet"
)

var validPaymentMethods = map[PaymentMethod]struct{}{
	PaymentMethodCOD:    {},
	PaymentMethodCard:   {},
	PaymentMethodPaypal: {},
	PaymentMethodStripe: {},
	PaymentMethodWallet: {},
}

// ToPaymentMethod treats an empty string as cash on delivery.
func ToPaymentMethod(s string) (PaymentMethod, error) {
	if s == "" {
		return PaymentMethodCOD, nil
	}

	method := PaymentMethod(s)
	if _, ok := validPaymentMethods[method]; ok {
		return method, nil
	}

	return "", errors.New("invalid payment method")
}
