package view

import (
	"bytes"
	"testing"

	"github.com/rogerio-castellano/commerce-dashboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	products := []models.Product{
		{ID: 1, Name: "Desk, Oak", Category: "Home", Price: 9.5, UnitsSold: 4, InStock: 2, Date: "2024-05-01"},
	}
	var buf bytes.Buffer

	require.NoError(t, WriteCSV(&buf, products))

	want := "name,category,price,unitsSold,revenue,date,inStock\n" +
		"\"Desk, Oak\",Home,9.5,4,38,2024-05-01,2\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteCSV_HeaderOnlyWhenEmpty(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteCSV(&buf, nil))

	assert.Equal(t, "name,category,price,unitsSold,revenue,date,inStock\n", buf.String())
}
