package domain

// DefaultPageSize is the number of hotel cards appended per "load more".
const DefaultPageSize = 3

// HotelPager pages through an already fetched hotel list.
type HotelPager struct {
	offers    []HotelOffer
	skipped   int
	pageSize  int
	offset    int
	lastPage  int
	started   bool
	announced bool
}

// NewHotelPager creates a pager over offers. Non-positive page sizes fall back to
// DefaultPageSize.
func NewHotelPager(offers []HotelOffer, skipped, pageSize int) *HotelPager {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &HotelPager{
		offers:   offers,
		skipped:  skipped,
		pageSize: pageSize,
	}
}

// Next returns the next page and advances the offset. It returns nil once exhausted.
func (p *HotelPager) Next() []HotelOffer {
	if !p.HasMore() {
		return nil
	}
	end := min(p.offset+p.pageSize, len(p.offers))
	page := p.offers[p.offset:end]
	p.offset = end
	p.lastPage = len(page)
	p.started = true
	return page
}

// HasMore reports whether another page can be loaded. It turns false when the offset
// reaches the total or the previous page came back short.
func (p *HotelPager) HasMore() bool {
	if p.offset >= len(p.offers) {
		return false
	}
	return !p.started || p.lastPage >= p.pageSize
}

// Offset returns how many offers have been handed out.
func (p *HotelPager) Offset() int {
	return p.offset
}

// Total returns the number of valid offers.
func (p *HotelPager) Total() int {
	return len(p.offers)
}

// PageSize returns the configured page size.
func (p *HotelPager) PageSize() int {
	return p.pageSize
}

// SkippedNotice returns the skipped-offer count the first time it is called after all
// pages were handed out. Later calls report false until Reset.
func (p *HotelPager) SkippedNotice() (int, bool) {
	if p.announced || p.skipped == 0 || p.HasMore() {
		return 0, false
	}
	p.announced = true
	return p.skipped, true
}

// Reset replaces the list and rewinds the pager.
func (p *HotelPager) Reset(offers []HotelOffer, skipped int) {
	p.offers = offers
	p.skipped = skipped
	p.offset = 0
	p.lastPage = 0
	p.started = false
	p.announced = false
}
