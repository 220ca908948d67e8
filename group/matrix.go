package group

// ZqMatrix is an immutable m x n array of ZqElement, all of the same group,
// stored row-major. A matrix is either 0x0 or has both dimensions >= 1.
type ZqMatrix struct {
	group      ZqGroup
	rows, cols int
	data       []ZqElement // row-major: data[i*cols+j]
}

// NewZqMatrixFromRows builds a matrix from a slice of equal-length rows.
func NewZqMatrixFromRows(group ZqGroup, rows [][]ZqElement) (ZqMatrix, error) {
	if len(rows) == 0 {
		return ZqMatrix{group: group, rows: 0, cols: 0}, nil
	}
	cols := len(rows[0])
	if cols == 0 {
		return ZqMatrix{}, InvalidArgument("matrix rows must be non-empty unless the matrix is 0x0")
	}
	data := make([]ZqElement, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return ZqMatrix{}, InvalidArgument("row %d has length %d, expected %d", i, len(row), cols)
		}
		for _, e := range row {
			if !e.group.Equals(group) {
				return ZqMatrix{}, InvalidArgument("element at row %d belongs to a different Zq group", i)
			}
			data = append(data, e)
		}
	}
	return ZqMatrix{group: group, rows: len(rows), cols: cols, data: data}, nil
}

// NewZqMatrixFromColumns builds a matrix from a slice of equal-length columns.
func NewZqMatrixFromColumns(group ZqGroup, cols [][]ZqElement) (ZqMatrix, error) {
	if len(cols) == 0 {
		return ZqMatrix{group: group, rows: 0, cols: 0}, nil
	}
	rows := len(cols[0])
	if rows == 0 {
		return ZqMatrix{}, InvalidArgument("matrix columns must be non-empty unless the matrix is 0x0")
	}
	rowSlices := make([][]ZqElement, rows)
	for r := 0; r < rows; r++ {
		rowSlices[r] = make([]ZqElement, len(cols))
	}
	for c, col := range cols {
		if len(col) != rows {
			return ZqMatrix{}, InvalidArgument("column %d has length %d, expected %d", c, len(col), rows)
		}
		for r, e := range col {
			rowSlices[r][c] = e
		}
	}
	return NewZqMatrixFromRows(group, rowSlices)
}

// Group returns the common Zq group of this matrix.
func (m ZqMatrix) Group() ZqGroup { return m.group }

// NumRows returns the row count.
func (m ZqMatrix) NumRows() int { return m.rows }

// NumColumns returns the column count.
func (m ZqMatrix) NumColumns() int { return m.cols }

// Get returns the element at (row, col).
func (m ZqMatrix) Get(row, col int) ZqElement { return m.data[row*m.cols+col] }

// GetRow returns row i as a ZqVector.
func (m ZqMatrix) GetRow(i int) ZqVector {
	elems := make([]ZqElement, m.cols)
	copy(elems, m.data[i*m.cols:(i+1)*m.cols])
	v, _ := NewZqVector(m.group, elems)
	return v
}

// GetColumn returns column j as a ZqVector.
func (m ZqMatrix) GetColumn(j int) ZqVector {
	elems := make([]ZqElement, m.rows)
	for i := 0; i < m.rows; i++ {
		elems[i] = m.Get(i, j)
	}
	v, _ := NewZqVector(m.group, elems)
	return v
}

// PrependColumn returns a new matrix with col inserted before column 0.
func (m ZqMatrix) PrependColumn(col ZqVector) (ZqMatrix, error) {
	if col.Len() != m.rows {
		return ZqMatrix{}, InvalidArgument("column length %d does not match row count %d", col.Len(), m.rows)
	}
	cols := make([][]ZqElement, m.cols+1)
	cols[0] = col.Slice()
	for j := 0; j < m.cols; j++ {
		cols[j+1] = m.GetColumn(j).Slice()
	}
	return NewZqMatrixFromColumns(m.group, cols)
}

// AppendColumn returns a new matrix with col inserted after the last column.
func (m ZqMatrix) AppendColumn(col ZqVector) (ZqMatrix, error) {
	if col.Len() != m.rows {
		return ZqMatrix{}, InvalidArgument("column length %d does not match row count %d", col.Len(), m.rows)
	}
	cols := make([][]ZqElement, m.cols+1)
	for j := 0; j < m.cols; j++ {
		cols[j] = m.GetColumn(j).Slice()
	}
	cols[m.cols] = col.Slice()
	return NewZqMatrixFromColumns(m.group, cols)
}

// GqMatrix is an immutable m x n array of GqElement, row-major.
type GqMatrix struct {
	group      GqGroup
	rows, cols int
	data       []GqElement
}

// NewGqMatrixFromRows builds a matrix from a slice of equal-length rows.
func NewGqMatrixFromRows(group GqGroup, rows [][]GqElement) (GqMatrix, error) {
	if len(rows) == 0 {
		return GqMatrix{group: group, rows: 0, cols: 0}, nil
	}
	cols := len(rows[0])
	if cols == 0 {
		return GqMatrix{}, InvalidArgument("matrix rows must be non-empty unless the matrix is 0x0")
	}
	data := make([]GqElement, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return GqMatrix{}, InvalidArgument("row %d has length %d, expected %d", i, len(row), cols)
		}
		for _, e := range row {
			if !e.group.Equals(group) {
				return GqMatrix{}, InvalidArgument("element at row %d belongs to a different Gq group", i)
			}
			data = append(data, e)
		}
	}
	return GqMatrix{group: group, rows: len(rows), cols: cols, data: data}, nil
}

// NewGqMatrixFromColumns builds a matrix from a slice of equal-length columns.
func NewGqMatrixFromColumns(group GqGroup, cols [][]GqElement) (GqMatrix, error) {
	if len(cols) == 0 {
		return GqMatrix{group: group, rows: 0, cols: 0}, nil
	}
	rows := len(cols[0])
	if rows == 0 {
		return GqMatrix{}, InvalidArgument("matrix columns must be non-empty unless the matrix is 0x0")
	}
	rowSlices := make([][]GqElement, rows)
	for r := 0; r < rows; r++ {
		rowSlices[r] = make([]GqElement, len(cols))
	}
	for c, col := range cols {
		if len(col) != rows {
			return GqMatrix{}, InvalidArgument("column %d has length %d, expected %d", c, len(col), rows)
		}
		for r, e := range col {
			rowSlices[r][c] = e
		}
	}
	return NewGqMatrixFromRows(group, rowSlices)
}

// Group returns the common Gq group of this matrix.
func (m GqMatrix) Group() GqGroup { return m.group }

// NumRows returns the row count.
func (m GqMatrix) NumRows() int { return m.rows }

// NumColumns returns the column count.
func (m GqMatrix) NumColumns() int { return m.cols }

// Get returns the element at (row, col).
func (m GqMatrix) Get(row, col int) GqElement { return m.data[row*m.cols+col] }

// GetRow returns row i as a GqVector.
func (m GqMatrix) GetRow(i int) GqVector {
	elems := make([]GqElement, m.cols)
	copy(elems, m.data[i*m.cols:(i+1)*m.cols])
	v, _ := NewGqVector(m.group, elems)
	return v
}

// GetColumn returns column j as a GqVector.
func (m GqMatrix) GetColumn(j int) GqVector {
	elems := make([]GqElement, m.rows)
	for i := 0; i < m.rows; i++ {
		elems[i] = m.Get(i, j)
	}
	v, _ := NewGqVector(m.group, elems)
	return v
}

// ReshapeVector splits a length-rows*cols vector into an m x n matrix,
// row-major, where m=rows and n=cols.
func ReshapeVector(v GqVector, rows, cols int) (GqMatrix, error) {
	if v.Len() != rows*cols {
		return GqMatrix{}, InvalidArgument("vector of length %d cannot be reshaped into %dx%d", v.Len(), rows, cols)
	}
	rowSlices := make([][]GqElement, rows)
	for i := 0; i < rows; i++ {
		rowSlices[i] = v.Slice()[i*cols : (i+1)*cols]
	}
	return NewGqMatrixFromRows(v.group, rowSlices)
}
