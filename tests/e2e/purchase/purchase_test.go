//go:build e2e

package purchase_test

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"phantom-mask/internal/handler/dto/request"
	"phantom-mask/internal/handler/dto/response"
	"phantom-mask/tests/common/authtest"
	"phantom-mask/tests/common/dbtest"
	"phantom-mask/tests/common/httptest"
	"phantom-mask/tests/e2e"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type purchaseSuite struct {
	e2e.SharedSuite
	token     string
	pharmacy  uuid.UUID
	inventory uuid.UUID
}

func TestPurchaseSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(purchaseSuite))
}

func (s *purchaseSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	s.token = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "buyer@example.com")
	s.pharmacy = dbtest.CreatePharmacy(s.T(), s.DB, "DFW Wellness", "500")
}

func purchaseURL(memberID uuid.UUID) string {
	return "/member/" + memberID.String() + "/create-purchase-history/"
}

func (s *purchaseSuite) buy(memberID uuid.UUID, lines ...request.PurchaseItem) (int, string) {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, purchaseURL(memberID), request.CreatePurchasesRequest(lines), s.token)
	return w.Code, w.Body.String()
}

func requireDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}

func (s *purchaseSuite) TestCreatePurchase() {
	s.Run("single line moves money and stock", func() {
		t := s.T()
		inv := dbtest.CreateInventory(t, s.DB, s.pharmacy, "True Barrier", "10", 100)
		memberID := dbtest.CreateMember(t, s.DB, "Yvonne", "1000")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, purchaseURL(memberID),
			request.CreatePurchasesRequest{{InventoryID: inv, Quantity: 2}}, s.token)

		var histories []response.PurchaseHistoryResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &histories)
		require.Len(t, histories, 1)
		requireDecimal(t, "20", histories[0].Amount)
		require.Equal(t, 2, histories[0].Quantity)
		require.Equal(t, "DFW Wellness", histories[0].PharmacyName)
		require.Equal(t, "True Barrier", histories[0].InventoryName)

		requireDecimal(t, "980", dbtest.BalanceOf(t, s.DB, "members", memberID))
		requireDecimal(t, "520", dbtest.BalanceOf(t, s.DB, "pharmacies", s.pharmacy))
		require.Equal(t, 98, dbtest.StockOf(t, s.DB, inv))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "purchase_histories"))
	})

	s.Run("proceeds are split per pharmacy", func() {
		t := s.T()
		other := dbtest.CreatePharmacy(t, s.DB, "Carepoint", "0")
		a := dbtest.CreateInventory(t, s.DB, s.pharmacy, "True Barrier", "10", 10)
		b := dbtest.CreateInventory(t, s.DB, other, "Masquerade", "25.5", 10)
		memberID := dbtest.CreateMember(t, s.DB, "Yvonne", "1000")

		code, body := s.buy(memberID,
			request.PurchaseItem{InventoryID: a, Quantity: 3},
			request.PurchaseItem{InventoryID: b, Quantity: 2},
		)
		require.Equal(t, http.StatusCreated, code, body)

		requireDecimal(t, "919", dbtest.BalanceOf(t, s.DB, "members", memberID))
		requireDecimal(t, "530", dbtest.BalanceOf(t, s.DB, "pharmacies", s.pharmacy))
		requireDecimal(t, "51", dbtest.BalanceOf(t, s.DB, "pharmacies", other))
	})

	s.Run("history survives inventory deletion", func() {
		t := s.T()
		inv := dbtest.CreateInventory(t, s.DB, s.pharmacy, "True Barrier", "10", 10)
		memberID := dbtest.CreateMember(t, s.DB, "Yvonne", "1000")

		code, body := s.buy(memberID, request.PurchaseItem{InventoryID: inv, Quantity: 1})
		require.Equal(t, http.StatusCreated, code, body)

		_, err := s.DB.Exec(t.Context(), "DELETE FROM inventories WHERE id = $1", inv)
		require.NoError(t, err)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/member/"+memberID.String()+"/purchase-history/", nil, s.token)
		var page response.PurchaseHistoryPageResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
		require.Len(t, page.Results, 1)
		require.Equal(t, "True Barrier", page.Results[0].InventoryName)
		require.Nil(t, page.Results[0].InventoryID)
	})
}

func (s *purchaseSuite) TestCreatePurchaseFailures() {
	tests := []struct {
		name    string
		balance string
		stock   int
		qty     int
		detail  string
	}{
		{name: "balance too low", balance: "10", stock: 100, qty: 2, detail: "not enough"},
		{name: "quantity above stock", balance: "1000", stock: 1, qty: 2, detail: "out of stock"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()
			inv := dbtest.CreateInventory(t, s.DB, s.pharmacy, "True Barrier", "10", tt.stock)
			memberID := dbtest.CreateMember(t, s.DB, "Yvonne", tt.balance)

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, purchaseURL(memberID),
				request.CreatePurchasesRequest{{InventoryID: inv, Quantity: tt.qty}}, s.token)
			httptest.AssertErrorDetail(t, w, http.StatusBadRequest, tt.detail)

			requireDecimal(t, tt.balance, dbtest.BalanceOf(t, s.DB, "members", memberID))
			requireDecimal(t, "500", dbtest.BalanceOf(t, s.DB, "pharmacies", s.pharmacy))
			require.Equal(t, tt.stock, dbtest.StockOf(t, s.DB, inv))
			require.Equal(t, 0, dbtest.CountRows(t, s.DB, "purchase_histories"))
			require.Equal(t, 0, dbtest.CountRows(t, s.DB, "inventory_snapshots"))
		})
	}

	s.Run("a failing line rolls back the whole batch", func() {
		t := s.T()
		ok := dbtest.CreateInventory(t, s.DB, s.pharmacy, "True Barrier", "10", 100)
		scarce := dbtest.CreateInventory(t, s.DB, s.pharmacy, "MaskT", "10", 1)
		memberID := dbtest.CreateMember(t, s.DB, "Yvonne", "1000")

		code, _ := s.buy(memberID,
			request.PurchaseItem{InventoryID: ok, Quantity: 5},
			request.PurchaseItem{InventoryID: scarce, Quantity: 2},
		)
		require.Equal(t, http.StatusBadRequest, code)
		require.Equal(t, 100, dbtest.StockOf(t, s.DB, ok))
		requireDecimal(t, "1000", dbtest.BalanceOf(t, s.DB, "members", memberID))
	})

	s.Run("unknown member", func() {
		t := s.T()
		inv := dbtest.CreateInventory(t, s.DB, s.pharmacy, "True Barrier", "10", 100)

		code, _ := s.buy(uuid.New(), request.PurchaseItem{InventoryID: inv, Quantity: 1})
		require.Equal(t, http.StatusNotFound, code)
		require.Equal(t, 100, dbtest.StockOf(t, s.DB, inv))
	})

	s.Run("unknown inventory", func() {
		t := s.T()
		memberID := dbtest.CreateMember(t, s.DB, "Yvonne", "1000")

		code, _ := s.buy(memberID, request.PurchaseItem{InventoryID: uuid.New(), Quantity: 1})
		require.Equal(t, http.StatusBadRequest, code)
	})

	s.Run("empty batch", func() {
		memberID := dbtest.CreateMember(s.T(), s.DB, "Yvonne", "1000")

		code, _ := s.buy(memberID)
		require.Equal(s.T(), http.StatusBadRequest, code)
	})
}

func (s *purchaseSuite) TestConcurrentPurchasesNeverOversell() {
	s.Run("ten buyers race for five masks", func() {
		t := s.T()
		const buyers = 10
		const stock = 5
		inv := dbtest.CreateInventory(t, s.DB, s.pharmacy, "True Barrier", "10", stock)
		members := make([]uuid.UUID, buyers)
		for i := range members {
			members[i] = dbtest.CreateMember(t, s.DB, "buyer", "100")
		}

		codes := make([]int, buyers)
		var wg sync.WaitGroup
		for i, memberID := range members {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, purchaseURL(memberID),
					request.CreatePurchasesRequest{{InventoryID: inv, Quantity: 1}}, s.token)
				codes[i] = w.Code
			}()
		}
		wg.Wait()

		var created int
		for _, c := range codes {
			require.Contains(t, []int{http.StatusCreated, http.StatusBadRequest}, c)
			if c == http.StatusCreated {
				created++
			}
		}
		require.Equal(t, stock, created)
		require.Equal(t, 0, dbtest.StockOf(t, s.DB, inv))
		require.Equal(t, stock, dbtest.CountRows(t, s.DB, "purchase_histories"))
		requireDecimal(t, "550", dbtest.BalanceOf(t, s.DB, "pharmacies", s.pharmacy))
	})

	s.Run("one member racing itself keeps a non-negative balance", func() {
		t := s.T()
		inv := dbtest.CreateInventory(t, s.DB, s.pharmacy, "True Barrier", "10", 100)
		memberID := dbtest.CreateMember(t, s.DB, "Yvonne", "35")

		var wg sync.WaitGroup
		for range 6 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				httptest.PerformRequest(t, s.Router, http.MethodPost, purchaseURL(memberID),
					request.CreatePurchasesRequest{{InventoryID: inv, Quantity: 1}}, s.token)
			}()
		}
		wg.Wait()

		requireDecimal(t, "5", dbtest.BalanceOf(t, s.DB, "members", memberID))
		require.Equal(t, 97, dbtest.StockOf(t, s.DB, inv))
	})
}

func (s *purchaseSuite) TestPurchaseHistoryPagination() {
	s.Run("newest first with a cursor", func() {
		t := s.T()
		inv := dbtest.CreateInventory(t, s.DB, s.pharmacy, "True Barrier", "10", 100)
		memberID := dbtest.CreateMember(t, s.DB, "Yvonne", "0")
		base := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
		for i := range 3 {
			dbtest.CreatePurchaseHistory(t, s.DB, memberID, inv, "10", 1, base.Add(time.Duration(i)*time.Hour))
		}

		url := "/member/" + memberID.String() + "/purchase-history/"
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url+"?limit=2", nil, s.token)
		var first response.PurchaseHistoryPageResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &first)
		require.Len(t, first.Results, 2)
		require.True(t, first.Results[0].PurchasedAt.Equal(base.Add(2*time.Hour)))
		require.NotEmpty(t, first.NextCursor)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, url+"?limit=2&cursor="+first.NextCursor, nil, s.token)
		var second response.PurchaseHistoryPageResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &second)
		require.Len(t, second.Results, 1)
		require.True(t, second.Results[0].PurchasedAt.Equal(base))
		require.Empty(t, second.NextCursor)
	})

	s.Run("unknown member", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/member/"+uuid.New().String()+"/purchase-history/", nil, s.token)
		require.Equal(s.T(), http.StatusNotFound, w.Code)
	})
}
