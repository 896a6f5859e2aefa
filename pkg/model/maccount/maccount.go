package maccount

import "boards-backend/pkg/idwrap"

type Account struct {
	ID      idwrap.IDWrap
	Name    string
	OwnerID idwrap.IDWrap
}
