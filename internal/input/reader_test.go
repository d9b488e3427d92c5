package input

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadCSV(t *testing.T) {
	path := writeTemp(t, "detail.csv",
		"date,product,category,quantity,price\n"+
			"2024-01-01,Laptop,Electronics,1,1200\n"+
			"2024-01-02,Mouse,Electronics,2,25.5\n")

	records, err := ReadCSV(path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	product, ok := records[0].String("product")
	require.True(t, ok)
	assert.Equal(t, "Laptop", product)

	price, ok := records[1].Float("price")
	require.True(t, ok)
	assert.Equal(t, 25.5, price)
}

func TestReadCSVEmptyFile(t *testing.T) {
	path := writeTemp(t, "empty.csv", "")
	records, err := ReadCSV(path)
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NotNil(t, records)
}

func TestReadJSONL(t *testing.T) {
	path := writeTemp(t, "logs.jsonl",
		`{"endpoint":"/a","status":200}`+"\n"+
			"\n"+
			`{"endpoint":"/b","status":500}`+"\n")

	records, err := ReadJSONL(path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	endpoint, ok := records[1].String("endpoint")
	require.True(t, ok)
	assert.Equal(t, "/b", endpoint)
}

func TestReadJSONLNonObjectLine(t *testing.T) {
	path := writeTemp(t, "bad.jsonl", `{"ok":true}`+"\n[1,2,3]\n")
	_, err := ReadJSONL(path)
	require.ErrorIs(t, err, ErrMalformedInput)
}

func TestReadJSONArray(t *testing.T) {
	path := writeTemp(t, "rows.json",
		`[{"date":"2024-01-01","product":"Laptop","category":"Electronics","quantity":1,"price":1200}]`)

	records, err := ReadJSONArray(path)
	require.NoError(t, err)
	require.Len(t, records, 1)

	rows, err := DetailRows(records)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Laptop", rows[0].Product)
	assert.Equal(t, 1, rows[0].Quantity)
	assert.Equal(t, 1200.0, rows[0].Price)
}

func TestReadJSONArrayNotAnArray(t *testing.T) {
	path := writeTemp(t, "obj.json", `{"date":"2024-01-01"}`)
	_, err := ReadJSONArray(path)
	require.ErrorIs(t, err, ErrMalformedInput)
}

func TestDetailRowsInvalidQuantity(t *testing.T) {
	records, err := ReadCSV(writeTemp(t, "bad.csv",
		"date,product,category,quantity,price\n2024-01-01,Laptop,Electronics,abc,1200\n"))
	require.NoError(t, err)

	_, err = DetailRows(records)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quantity")
}

func TestOrdersAndCustomers(t *testing.T) {
	customerRecords, err := ReadJSONArray(writeTemp(t, "customers.json",
		`[{"customer_id":"C1","customer_name":"Acme","segment":"Enterprise"}]`))
	require.NoError(t, err)
	customers, err := Customers(customerRecords)
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "Enterprise", customers[0].Segment)

	orderRecords, err := ReadJSONArray(writeTemp(t, "orders.json",
		`[{"order_id":"O1","order_date":"2024-01-01","customer_id":"C1","product":"Laptop","quantity":2,"unit_price":10.5}]`))
	require.NoError(t, err)
	orders, err := Orders(orderRecords)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, 21.0, orders[0].LineTotal())
}
