// internal/app/features/comments/handler_test.go
package comments_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/codeit-toyproject-five/zogakzip/internal/app/features/comments"
	commentstore "github.com/codeit-toyproject-five/zogakzip/internal/app/store/comments"
	poststore "github.com/codeit-toyproject-five/zogakzip/internal/app/store/posts"
	"github.com/codeit-toyproject-five/zogakzip/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*comments.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	handler := comments.NewHandler(commentstore.New(db), poststore.New(db), zap.NewNop())
	fixtures := testutil.NewFixtures(t, db)
	return handler, fixtures
}

func TestHandleCreateComment_Success(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	g := fixtures.CreateGroup(ctx, "달봉이네", "secret")
	p := fixtures.CreatePost(ctx, g.ID, "에델바이스 꽃", "pw1234")

	body := `{"nickname":"댓글러","content":"좋은 추억이네요","password":"cpw"}`
	req := httptest.NewRequest("POST", "/api/posts/"+p.ID.Hex()+"/comments", strings.NewReader(body))
	req = testutil.WithChiURLParam(req, "postId", p.ID.Hex())
	rec := httptest.NewRecorder()

	handler.HandleCreateComment(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	var resp struct {
		ID       string `json:"id"`
		Nickname string `json:"nickname"`
		Content  string `json:"content"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.Nickname != "댓글러" || resp.Content != "좋은 추억이네요" {
		t.Errorf("unexpected response: %+v", resp)
	}

	// commentCount reflects the new comment
	var stored struct {
		CommentCount int64 `bson:"commentCount"`
	}
	if err := fixtures.DB().Collection("posts").FindOne(ctx, bson.M{"_id": p.ID}).Decode(&stored); err != nil {
		t.Fatalf("FindOne failed: %v", err)
	}
	if stored.CommentCount != 1 {
		t.Errorf("commentCount: got %d, want 1", stored.CommentCount)
	}
}

func TestHandleCreateComment_MissingField(t *testing.T) {
	handler, _ := newTestHandler(t)

	id := primitive.NewObjectID().Hex()
	body := `{"nickname":"댓글러","content":"비번 없음"}`
	req := httptest.NewRequest("POST", "/api/posts/"+id+"/comments", strings.NewReader(body))
	req = testutil.WithChiURLParam(req, "postId", id)
	rec := httptest.NewRecorder()

	handler.HandleCreateComment(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestHandleCreateComment_PostMissing(t *testing.T) {
	handler, _ := newTestHandler(t)

	id := primitive.NewObjectID().Hex()
	body := `{"nickname":"댓글러","content":"c","password":"pw"}`
	req := httptest.NewRequest("POST", "/api/posts/"+id+"/comments", strings.NewReader(body))
	req = testutil.WithChiURLParam(req, "postId", id)
	rec := httptest.NewRecorder()

	handler.HandleCreateComment(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "존재하지 않는 게시물입니다") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestHandleListComments_OrderAndJoin(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	g := fixtures.CreateGroup(ctx, "달봉이네", "secret")
	p := fixtures.CreatePost(ctx, g.ID, "에델바이스 꽃", "pw1234")
	first := fixtures.CreateComment(ctx, p.ID, "첫 댓글", "pw")
	second := fixtures.CreateComment(ctx, p.ID, "둘째 댓글", "pw")

	req := httptest.NewRequest("GET", "/api/posts/"+p.ID.Hex()+"/comments", nil)
	req = testutil.WithChiURLParam(req, "postId", p.ID.Hex())
	rec := httptest.NewRecorder()

	handler.HandleListComments(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	var resp struct {
		TotalItemCount int64 `json:"totalItemCount"`
		Data           []struct {
			ID        string `json:"id"`
			PostTitle string `json:"postTitle"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.TotalItemCount != 2 || len(resp.Data) != 2 {
		t.Fatalf("expected 2 comments, got %d", resp.TotalItemCount)
	}
	// oldest first
	if resp.Data[0].ID != first.ID.Hex() || resp.Data[1].ID != second.ID.Hex() {
		t.Errorf("comments out of order: %v", resp.Data)
	}
	if resp.Data[0].PostTitle != "에델바이스 꽃" {
		t.Errorf("postTitle join: got %q", resp.Data[0].PostTitle)
	}
}

func TestHandleListComments_BadPaging(t *testing.T) {
	handler, _ := newTestHandler(t)

	id := primitive.NewObjectID().Hex()
	req := httptest.NewRequest("GET", "/api/posts/"+id+"/comments?page=0", nil)
	req = testutil.WithChiURLParam(req, "postId", id)
	rec := httptest.NewRecorder()

	handler.HandleListComments(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestHandleUpdateComment(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	g := fixtures.CreateGroup(ctx, "달봉이네", "secret")
	p := fixtures.CreatePost(ctx, g.ID, "에델바이스 꽃", "pw1234")
	cm := fixtures.CreateComment(ctx, p.ID, "첫 댓글", "cpw")

	t.Run("wrong password", func(t *testing.T) {
		body := `{"nickname":"댓글러","content":"수정","password":"nope"}`
		req := httptest.NewRequest("PUT", "/api/comments/"+cm.ID.Hex(), strings.NewReader(body))
		req = testutil.WithChiURLParam(req, "commentId", cm.ID.Hex())
		rec := httptest.NewRecorder()

		handler.HandleUpdateComment(rec, req)

		if rec.Code != http.StatusForbidden {
			t.Errorf("expected status %d, got %d", http.StatusForbidden, rec.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		body := `{"nickname":"새 이름","content":"수정된 댓글","password":"cpw"}`
		req := httptest.NewRequest("PUT", "/api/comments/"+cm.ID.Hex(), strings.NewReader(body))
		req = testutil.WithChiURLParam(req, "commentId", cm.ID.Hex())
		rec := httptest.NewRecorder()

		handler.HandleUpdateComment(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
		}
		var resp struct {
			Nickname string `json:"nickname"`
			Content  string `json:"content"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}
		if resp.Nickname != "새 이름" || resp.Content != "수정된 댓글" {
			t.Errorf("unexpected response: %+v", resp)
		}
	})
}

func TestHandleDeleteComment_DecrementsCommentCount(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	g := fixtures.CreateGroup(ctx, "달봉이네", "secret")
	p := fixtures.CreatePost(ctx, g.ID, "에델바이스 꽃", "pw1234")
	cm := fixtures.CreateComment(ctx, p.ID, "첫 댓글", "cpw")

	req := httptest.NewRequest("DELETE", "/api/comments/"+cm.ID.Hex(), strings.NewReader(`{"password":"cpw"}`))
	req = testutil.WithChiURLParam(req, "commentId", cm.ID.Hex())
	rec := httptest.NewRecorder()

	handler.HandleDeleteComment(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "답글 삭제 성공") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}

	var stored struct {
		CommentCount int64 `bson:"commentCount"`
	}
	if err := fixtures.DB().Collection("posts").FindOne(ctx, bson.M{"_id": p.ID}).Decode(&stored); err != nil {
		t.Fatalf("FindOne failed: %v", err)
	}
	if stored.CommentCount != 0 {
		t.Errorf("commentCount: got %d, want 0", stored.CommentCount)
	}
}

func TestHandleDeleteComment_NoPassword(t *testing.T) {
	handler, _ := newTestHandler(t)

	id := primitive.NewObjectID().Hex()
	req := httptest.NewRequest("DELETE", "/api/comments/"+id, strings.NewReader(`{}`))
	req = testutil.WithChiURLParam(req, "commentId", id)
	rec := httptest.NewRecorder()

	handler.HandleDeleteComment(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}
