// internal/app/features/groups/handler_test.go
package groups_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/codeit-toyproject-five/zogakzip/internal/app/features/groups"
	"github.com/codeit-toyproject-five/zogakzip/internal/app/policy/engagement"
	groupstore "github.com/codeit-toyproject-five/zogakzip/internal/app/store/groups"
	"github.com/codeit-toyproject-five/zogakzip/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*groups.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	handler := groups.NewHandler(groupstore.New(db), zap.NewNop())
	fixtures := testutil.NewFixtures(t, db)
	return handler, fixtures
}

func TestHandleCreateGroup_Success(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	body := `{"name":"달봉이네","password":"secret","imageUrl":"http://example.com/a.jpg","isPublic":true,"introduction":"가족 추억 보관소"}`
	req := httptest.NewRequest("POST", "/api/groups", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.HandleCreateGroup(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, rec.Code, rec.Body.String())
	}

	var resp struct {
		ID         string   `json:"id"`
		Name       string   `json:"name"`
		BadgeCount int64    `json:"badgeCount"`
		Badges     []string `json:"badges"`
		PostCount  int64    `json:"postCount"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.Name != "달봉이네" {
		t.Errorf("name: got %q", resp.Name)
	}
	if resp.BadgeCount != 0 || resp.PostCount != 0 {
		t.Errorf("new group counters should be zero, got badgeCount=%d postCount=%d", resp.BadgeCount, resp.PostCount)
	}
	if resp.Badges == nil || len(resp.Badges) != 0 {
		t.Errorf("badges should be an empty list, got %v", resp.Badges)
	}
	if strings.Contains(rec.Body.String(), `"password"`) {
		t.Error("response must not expose the password")
	}

	// Verify the stored password is hashed, not plaintext
	var stored struct {
		Password string `bson:"password"`
	}
	id, _ := primitive.ObjectIDFromHex(resp.ID)
	if err := fixtures.DB().Collection("groups").FindOne(ctx, bson.M{"_id": id}).Decode(&stored); err != nil {
		t.Fatalf("FindOne failed: %v", err)
	}
	if stored.Password == "secret" || stored.Password == "" {
		t.Error("password must be stored hashed")
	}
}

func TestHandleCreateGroup_MissingField(t *testing.T) {
	handler, _ := newTestHandler(t)

	body := `{"name":"달봉이네","password":"secret"}`
	req := httptest.NewRequest("POST", "/api/groups", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.HandleCreateGroup(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestHandleGroupDetail_NotFound(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := httptest.NewRequest("GET", "/api/groups/x", nil)
	req = testutil.WithChiURLParam(req, "groupId", primitive.NewObjectID().Hex())
	rec := httptest.NewRecorder()

	handler.HandleGroupDetail(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
}

func TestHandleGroupDetail_BadID(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := httptest.NewRequest("GET", "/api/groups/nope", nil)
	req = testutil.WithChiURLParam(req, "groupId", "nope")
	rec := httptest.NewRecorder()

	handler.HandleGroupDetail(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestHandleUpdateGroup_WrongPassword(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	g := fixtures.CreateGroup(ctx, "달봉이네", "secret")

	body := `{"password":"wrong","name":"새 이름"}`
	req := httptest.NewRequest("PATCH", "/api/groups/"+g.ID.Hex(), strings.NewReader(body))
	req = testutil.WithChiURLParam(req, "groupId", g.ID.Hex())
	rec := httptest.NewRecorder()

	handler.HandleUpdateGroup(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("expected status %d, got %d", http.StatusForbidden, rec.Code)
	}
}

func TestHandleUpdateGroup_PartialUpdate(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	g := fixtures.CreateGroup(ctx, "달봉이네", "secret")

	// isPublic false must be applied even though it is the zero value
	body := `{"password":"secret","isPublic":false}`
	req := httptest.NewRequest("PATCH", "/api/groups/"+g.ID.Hex(), strings.NewReader(body))
	req = testutil.WithChiURLParam(req, "groupId", g.ID.Hex())
	rec := httptest.NewRecorder()

	handler.HandleUpdateGroup(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	var resp struct {
		Name     string `json:"name"`
		IsPublic bool   `json:"isPublic"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.IsPublic {
		t.Error("isPublic should have been set to false")
	}
	if resp.Name != "달봉이네" {
		t.Errorf("untouched field changed: got %q", resp.Name)
	}
}

func TestHandleDeleteGroup_Success(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	g := fixtures.CreateGroup(ctx, "달봉이네", "secret")

	req := httptest.NewRequest("DELETE", "/api/groups/"+g.ID.Hex(), strings.NewReader(`{"password":"secret"}`))
	req = testutil.WithChiURLParam(req, "groupId", g.ID.Hex())
	rec := httptest.NewRecorder()

	handler.HandleDeleteGroup(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "그룹 삭제 성공") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}

	count, err := fixtures.DB().Collection("groups").CountDocuments(ctx, bson.M{"_id": g.ID})
	if err != nil {
		t.Fatalf("CountDocuments failed: %v", err)
	}
	if count != 0 {
		t.Errorf("group should be gone, found %d", count)
	}
}

func TestHandleVerifyPassword(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	g := fixtures.CreateGroup(ctx, "달봉이네", "secret")

	cases := []struct {
		name     string
		password string
		want     int
	}{
		{"correct", "secret", http.StatusOK},
		{"wrong", "nope", http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body := `{"password":"` + tc.password + `"}`
			req := httptest.NewRequest("POST", "/api/groups/"+g.ID.Hex()+"/verify-password", strings.NewReader(body))
			req = testutil.WithChiURLParam(req, "groupId", g.ID.Hex())
			rec := httptest.NewRecorder()

			handler.HandleVerifyPassword(rec, req)

			if rec.Code != tc.want {
				t.Errorf("expected status %d, got %d", tc.want, rec.Code)
			}
		})
	}
}

func TestHandleLikeGroup_Increments(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	g := fixtures.CreateGroup(ctx, "달봉이네", "secret")

	req := httptest.NewRequest("POST", "/api/groups/"+g.ID.Hex()+"/like", nil)
	req = testutil.WithChiURLParam(req, "groupId", g.ID.Hex())
	rec := httptest.NewRecorder()

	handler.HandleLikeGroup(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	var stored struct {
		LikeCount int64 `bson:"likeCount"`
	}
	if err := fixtures.DB().Collection("groups").FindOne(ctx, bson.M{"_id": g.ID}).Decode(&stored); err != nil {
		t.Fatalf("FindOne failed: %v", err)
	}
	if stored.LikeCount != 1 {
		t.Errorf("likeCount: got %d, want 1", stored.LikeCount)
	}
}

func TestHandleLikeGroup_NotFound(t *testing.T) {
	handler, _ := newTestHandler(t)

	id := primitive.NewObjectID().Hex()
	req := httptest.NewRequest("POST", "/api/groups/"+id+"/like", nil)
	req = testutil.WithChiURLParam(req, "groupId", id)
	rec := httptest.NewRecorder()

	handler.HandleLikeGroup(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
}

func TestHandleLikeGroup_AwardsBadgeAtThreshold(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	g := fixtures.CreateGroup(ctx, "달봉이네", "secret")
	if _, err := fixtures.DB().Collection("groups").UpdateByID(ctx, g.ID,
		bson.M{"$set": bson.M{"likeCount": engagement.LikeBadgeThreshold - 1}}); err != nil {
		t.Fatalf("failed to seed likeCount: %v", err)
	}

	req := httptest.NewRequest("POST", "/api/groups/"+g.ID.Hex()+"/like", nil)
	req = testutil.WithChiURLParam(req, "groupId", g.ID.Hex())
	rec := httptest.NewRecorder()

	handler.HandleLikeGroup(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	var stored struct {
		LikeCount  int64    `bson:"likeCount"`
		BadgeCount int64    `bson:"badgeCount"`
		Badges     []string `bson:"badges"`
	}
	if err := fixtures.DB().Collection("groups").FindOne(ctx, bson.M{"_id": g.ID}).Decode(&stored); err != nil {
		t.Fatalf("FindOne failed: %v", err)
	}
	if stored.LikeCount != engagement.LikeBadgeThreshold {
		t.Errorf("likeCount: got %d, want %d", stored.LikeCount, engagement.LikeBadgeThreshold)
	}
	if stored.BadgeCount != 1 || len(stored.Badges) != 1 || stored.Badges[0] != engagement.BadgeGroupLikes {
		t.Errorf("badge not awarded: badgeCount=%d badges=%v", stored.BadgeCount, stored.Badges)
	}
}

func TestHandleListGroups_KeywordAndSort(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	a := fixtures.CreateGroup(ctx, "바다 추억", "pw")
	fixtures.CreateGroup(ctx, "산행 모임", "pw")
	if _, err := fixtures.DB().Collection("groups").UpdateByID(ctx, a.ID,
		bson.M{"$set": bson.M{"likeCount": 5}}); err != nil {
		t.Fatalf("failed to seed likeCount: %v", err)
	}

	req := httptest.NewRequest("GET", "/api/groups?keyword=바다&sortBy=mostLiked", nil)
	rec := httptest.NewRecorder()

	handler.HandleListGroups(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	var resp struct {
		CurrentPage    int               `json:"currentPage"`
		TotalPages     int               `json:"totalPages"`
		TotalItemCount int64             `json:"totalItemCount"`
		Data           []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.TotalItemCount != 1 || len(resp.Data) != 1 {
		t.Errorf("keyword filter: got %d items", resp.TotalItemCount)
	}
	if resp.CurrentPage != 1 || resp.TotalPages != 1 {
		t.Errorf("envelope: currentPage=%d totalPages=%d", resp.CurrentPage, resp.TotalPages)
	}
}

func TestHandleIsPublic(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	g := fixtures.CreateGroup(ctx, "달봉이네", "secret")

	req := httptest.NewRequest("GET", "/api/groups/"+g.ID.Hex()+"/is-public", nil)
	req = testutil.WithChiURLParam(req, "groupId", g.ID.Hex())
	rec := httptest.NewRecorder()

	handler.HandleIsPublic(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var resp struct {
		ID       string `json:"id"`
		IsPublic bool   `json:"isPublic"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.ID != g.ID.Hex() || !resp.IsPublic {
		t.Errorf("unexpected response: %+v", resp)
	}
}
